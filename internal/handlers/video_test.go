package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/internal/testutil"
	"github.com/dimitrije/sendit/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupVideoTest(t *testing.T) (*testutil.MockLibraryService, *testutil.HTTPTestClient) {
	t.Helper()
	mockLibrary := new(testutil.MockLibraryService)
	handler := NewVideoHandler(mockLibrary)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/videos", handler.List)
	app.Post("/videos", handler.Create)
	app.Get("/videos/:videoId", handler.Get)
	app.Patch("/videos/:videoId", handler.Update)
	app.Delete("/videos/:videoId", handler.Delete)

	return mockLibrary, testutil.NewHTTPTestClient(t, app)
}

func TestVideoHandler_Create_Success(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	created := fx.Video(
		testutil.WithPlatform(models.PlatformInstagram, "https://www.instagram.com/reel/abc123/"),
		testutil.WithTitle("Instagram Reel"),
	)

	mockLibrary.On("GetCollection", mock.Anything, models.DefaultCollectionID).Return(fx.DefaultCollection(), nil)
	mockLibrary.On("AddVideo", mock.Anything, services.NewVideo{
		URL:          "https://www.instagram.com/reel/abc123/",
		Title:        "Instagram Reel",
		Platform:     models.PlatformInstagram,
		CollectionID: models.DefaultCollectionID,
	}).Return(created, nil)

	rec := client.POST("/videos", dto.CreateVideoRequest{URL: "  https://www.instagram.com/reel/abc123/ "})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.VideoResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, models.PlatformInstagram, response.Platform)
	assert.Equal(t, "Instagram", response.PlatformName)

	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_Create_TitleFromHashtags(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	mockLibrary.On("GetCollection", mock.Anything, models.DefaultCollectionID).Return(fx.DefaultCollection(), nil)
	mockLibrary.On("AddVideo", mock.Anything, mock.MatchedBy(func(in services.NewVideo) bool {
		return in.Title == "📸 Fitness" && in.Platform == models.PlatformInstagram
	})).Return(fx.Video(testutil.WithTitle("📸 Fitness")), nil)

	rec := client.POST("/videos", dto.CreateVideoRequest{URL: "https://www.instagram.com/reel/abc/#fitness"})

	testutil.AssertStatus(t, rec, http.StatusCreated)
	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_Create_FromSharedLink(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()
	gym := fx.Collection("Gym")

	mockLibrary.On("GetCollection", mock.Anything, gym.ID).Return(gym, nil)
	mockLibrary.On("AddVideo", mock.Anything, mock.MatchedBy(func(in services.NewVideo) bool {
		return in.URL == "https://www.tiktok.com/@chef/video/123" &&
			in.Platform == models.PlatformTikTok &&
			in.Title == "Pasta night" &&
			in.CollectionID == gym.ID
	})).Return(fx.Video(testutil.WithCollection(gym.ID)), nil)

	rec := client.POST("/videos", dto.CreateVideoRequest{
		URL:          "sendit://add?url=https%3A%2F%2Fwww.tiktok.com%2F%40chef%2Fvideo%2F123",
		Title:        "Pasta night",
		CollectionID: gym.ID,
	})

	testutil.AssertStatus(t, rec, http.StatusCreated)
	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_Create_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unsupported platform", "https://example.com/video"},
		{"garbage", "not a url"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLibrary, client := setupVideoTest(t)

			rec := client.POST("/videos", dto.CreateVideoRequest{URL: tt.url})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "unsupported or invalid video url")
			mockLibrary.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything)
		})
	}
}

func TestVideoHandler_Create_UnknownCollection(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)

	mockLibrary.On("GetCollection", mock.Anything, "gone").Return(nil, services.ErrCollectionNotFound)

	rec := client.POST("/videos", dto.CreateVideoRequest{URL: "https://youtu.be/abc", CollectionID: "gone"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "collection not found")
	mockLibrary.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything)
}

func TestVideoHandler_Create_PersistenceFailure(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	mockLibrary.On("GetCollection", mock.Anything, models.DefaultCollectionID).Return(fx.DefaultCollection(), nil)
	mockLibrary.On("AddVideo", mock.Anything, mock.Anything).Return(nil, errors.Join(services.ErrPersistence, errors.New("disk full")))

	rec := client.POST("/videos", dto.CreateVideoRequest{URL: "https://youtu.be/abc"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to create video")
}

func TestVideoHandler_Create_RevisionConflict(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	mockLibrary.On("GetCollection", mock.Anything, models.DefaultCollectionID).Return(fx.DefaultCollection(), nil)
	mockLibrary.On("AddVideo", mock.Anything, mock.Anything).Return(nil, services.ErrRevisionConflict)

	rec := client.POST("/videos", dto.CreateVideoRequest{URL: "https://youtu.be/abc"})

	assert.Equal(t, http.StatusConflict, rec.Code)

	var response dto.ErrorResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, "REVISION_CONFLICT", response.Code)
}

func TestVideoHandler_List_FiltersAndSorts(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	older := fx.Video(testutil.WithTitle("Funny cat"))
	newer := fx.Video(testutil.WithTitle("Cat piano"))

	mockLibrary.On("SearchVideos", mock.Anything, "cat", services.SearchFilter{Platform: models.PlatformYouTube}).
		Return([]models.Video{*older, *newer}, nil)

	rec := client.GET("/videos?q=cat&platform=YouTube")

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.VideoResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 2)
	assert.Equal(t, newer.ID, response[0].ID, "newest first by default")
	assert.Equal(t, older.ID, response[1].ID)

	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_List_TitleSortInCollection(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()

	b := fx.Video(testutil.WithTitle("banana"))
	a := fx.Video(testutil.WithTitle("Apple"))

	mockLibrary.On("SearchVideos", mock.Anything, "", services.SearchFilter{CollectionID: "gym"}).
		Return([]models.Video{*b, *a}, nil)

	rec := client.GET("/videos?collectionId=gym&sort=title")

	testutil.AssertStatus(t, rec, http.StatusOK)
	var response []dto.VideoResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 2)
	assert.Equal(t, "Apple", response[0].Title)
}

func TestVideoHandler_List_BadParams(t *testing.T) {
	_, client := setupVideoTest(t)

	rec := client.GET("/videos?platform=vimeo")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid platform")

	rec = client.GET("/videos?sort=random")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid sort order")
}

func TestVideoHandler_Get(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()
	video := fx.Video()

	mockLibrary.On("GetVideo", mock.Anything, video.ID).Return(video, nil)
	mockLibrary.On("GetVideo", mock.Anything, "missing").Return(nil, services.ErrVideoNotFound)

	rec := client.GET("/videos/" + video.ID)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = client.GET("/videos/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "video not found")
}

func TestVideoHandler_Update_MoveAndRename(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()
	gym := fx.Collection("Gym")
	video := fx.Video(testutil.WithCollection(gym.ID), testutil.WithTitle("Leg day"))

	title := "Leg day"
	mockLibrary.On("GetCollection", mock.Anything, gym.ID).Return(gym, nil)
	mockLibrary.On("UpdateVideo", mock.Anything, video.ID, services.VideoUpdate{Title: &title, CollectionID: &gym.ID}).Return(nil)
	mockLibrary.On("GetVideo", mock.Anything, video.ID).Return(video, nil)

	rawTitle := "  Leg day "
	rec := client.PATCH("/videos/"+video.ID, dto.UpdateVideoRequest{Title: &rawTitle, CollectionID: &gym.ID})

	testutil.AssertStatus(t, rec, http.StatusOK)
	var response dto.VideoResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, gym.ID, response.CollectionID)

	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_Update_ReclassifiesURL(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)
	fx := testutil.NewFixtures()
	video := fx.Video()

	mockLibrary.On("UpdateVideo", mock.Anything, video.ID, mock.MatchedBy(func(upd services.VideoUpdate) bool {
		return upd.URL != nil && *upd.URL == "https://vm.tiktok.com/xyz" &&
			upd.Platform != nil && *upd.Platform == models.PlatformTikTok
	})).Return(nil)
	mockLibrary.On("GetVideo", mock.Anything, video.ID).Return(video, nil)

	link := "https://vm.tiktok.com/xyz"
	rec := client.PATCH("/videos/"+video.ID, dto.UpdateVideoRequest{URL: &link})

	testutil.AssertStatus(t, rec, http.StatusOK)
	mockLibrary.AssertExpectations(t)
}

func TestVideoHandler_Update_Validation(t *testing.T) {
	_, client := setupVideoTest(t)

	rec := client.PATCH("/videos/v1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no fields to update")

	blank := "   "
	rec = client.PATCH("/videos/v1", dto.UpdateVideoRequest{Title: &blank})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title cannot be empty")

	bad := "https://example.com/x"
	rec = client.PATCH("/videos/v1", dto.UpdateVideoRequest{URL: &bad})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVideoHandler_Update_NotFound(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)

	title := "x"
	mockLibrary.On("UpdateVideo", mock.Anything, "missing", services.VideoUpdate{Title: &title}).Return(services.ErrVideoNotFound)

	rec := client.PATCH("/videos/missing", dto.UpdateVideoRequest{Title: &title})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVideoHandler_Delete(t *testing.T) {
	mockLibrary, client := setupVideoTest(t)

	mockLibrary.On("DeleteVideo", mock.Anything, "v1").Return(nil)

	rec := client.DELETE("/videos/v1")

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "video deleted")
	mockLibrary.AssertExpectations(t)
}
