package models

var CollectionColors = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#F97316", // orange
	"#6366F1", // indigo
	"#14B8A6", // teal
	"#84CC16", // lime
	"#F43F5E", // rose
	"#0EA5E9", // sky
	"#A855F7", // violet
	"#22C55E", // emerald
	"#EAB308", // yellow
	"#DC2626",
	"#7C3AED",
}

var CollectionIcons = []string{
	"play.circle.fill", "video.fill", "film.fill", "music.note", "headphones", "tv.fill",
	"radio.fill", "hifispeaker.fill", "photo.fill", "camera.fill", "video.bubble.fill",
	"theatermasks.fill",

	"heart.fill", "bubble.left.and.bubble.right.fill", "message.fill", "paperplane.fill",
	"megaphone.fill", "person.2.fill", "person.3.fill", "chart.line.uptrend.xyaxis",

	"folder.fill", "bookmark.fill", "book.fill", "books.vertical.fill", "doc.fill",
	"newspaper.fill", "note.text", "calendar", "checkmark.circle.fill", "list.bullet",
	"archivebox.fill",

	"graduationcap.fill", "pencil", "lightbulb.fill", "brain.fill", "studentdesk",
	"book.closed.fill",

	"sportscourt.fill", "figure.run", "bicycle", "basketball.fill", "football.fill",
	"dumbbell.fill", "tennis.racket", "figure.yoga",

	"gamecontroller.fill", "dice.fill", "puzzlepiece.fill", "cube.fill",

	"fork.knife", "cup.and.saucer.fill", "wineglass.fill", "birthday.cake.fill", "gift.fill",
	"balloon.fill",

	"airplane", "car.fill", "train.side.front.car", "house.fill", "building.2.fill", "map.fill",
	"globe", "signpost.right.fill", "mountain.2.fill", "beach.umbrella.fill",

	"leaf.fill", "tree.fill", "sun.max.fill", "moon.stars.fill", "cloud.rain.fill", "snowflake",
	"flame.fill", "drop.fill",

	"desktopcomputer", "laptopcomputer", "iphone", "applewatch", "keyboard.fill", "wifi",
	"antenna.radiowaves.left.and.right", "cpu.fill",

	"cart.fill", "bag.fill", "creditcard.fill", "dollarsign.circle.fill", "banknote.fill",
	"tag.fill",

	"heart.text.square.fill", "cross.fill", "pills.fill", "bandage.fill",
	"medical.thermometer.fill",

	"paintbrush.fill", "paintpalette.fill", "photo.artframe", "scissors", "eyedropper.full",

	"star.fill", "sparkles", "crown.fill", "trophy.fill", "flag.fill", "bell.fill", "bolt.fill",
	"wand.and.stars", "shield.fill", "lock.fill", "key.fill", "tag.circle.fill",
}
