package handlers

import (
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

func setupCollectionTest(t *testing.T) (*testutil.MockLibraryService, *testutil.HTTPTestClient) {
	t.Helper()
	mockLibrary := new(testutil.MockLibraryService)
	handler := NewCollectionHandler(mockLibrary)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/collections", handler.List)
	app.Post("/collections", handler.Create)
	app.Get("/collections/:collectionId", handler.Get)
	app.Patch("/collections/:collectionId", handler.Update)
	app.Delete("/collections/:collectionId", handler.Delete)
	app.Get("/collections/:collectionId/videos", handler.Videos)
	app.Get("/collections/:collectionId/share", handler.Share)

	return mockLibrary, testutil.NewHTTPTestClient(t, app)
}

func TestCollectionHandler_Create_Success(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)
	fx := testutil.NewFixtures()
	gym := fx.Collection("Gym")

	mockLibrary.On("AddCollection", mock.Anything, services.NewCollection{
		Name:  "Gym",
		Color: models.CollectionColors[0],
		Icon:  models.CollectionIcons[0],
	}).Return(gym, nil)

	rec := client.POST("/collections", dto.CreateCollectionRequest{Name: " Gym "})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.CollectionResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, gym.ID, response.ID)
	assert.Equal(t, "Gym", response.Name)
	assert.Equal(t, 0, response.VideoCount)
	assert.False(t, response.IsDefault)

	mockLibrary.AssertExpectations(t)
}

func TestCollectionHandler_Create_EmptyName(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	rec := client.POST("/collections", dto.CreateCollectionRequest{Name: "  "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
	mockLibrary.AssertNotCalled(t, "AddCollection", mock.Anything, mock.Anything)
}

func TestCollectionHandler_List(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)
	fx := testutil.NewFixtures()

	mockLibrary.On("GetCollections", mock.Anything).Return([]models.Collection{*fx.DefaultCollection(), *fx.Collection("Gym")}, nil)

	rec := client.GET("/collections")

	testutil.AssertStatus(t, rec, http.StatusOK)
	var response []dto.CollectionResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 2)
	assert.True(t, response[0].IsDefault)
	assert.Equal(t, "My Videos", response[0].Name)
	assert.Equal(t, "Gym", response[1].Name)
}

func TestCollectionHandler_Get_NotFound(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	mockLibrary.On("GetCollection", mock.Anything, "missing").Return(nil, services.ErrCollectionNotFound)

	rec := client.GET("/collections/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "collection not found")
}

func TestCollectionHandler_Update_RenameDefault(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)
	fx := testutil.NewFixtures()
	renamed := fx.DefaultCollection()
	renamed.Name = "Inbox"

	name := "Inbox"
	mockLibrary.On("UpdateCollection", mock.Anything, models.DefaultCollectionID, services.CollectionUpdate{Name: &name}).Return(nil)
	mockLibrary.On("GetCollection", mock.Anything, models.DefaultCollectionID).Return(renamed, nil)

	rec := client.PATCH("/collections/default", dto.UpdateCollectionRequest{Name: &name})

	testutil.AssertStatus(t, rec, http.StatusOK)
	var response dto.CollectionResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, "Inbox", response.Name)
	assert.True(t, response.IsDefault)

	mockLibrary.AssertExpectations(t)
}

func TestCollectionHandler_Update_Validation(t *testing.T) {
	_, client := setupCollectionTest(t)

	rec := client.PATCH("/collections/c1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no fields to update")

	blank := ""
	rec = client.PATCH("/collections/c1", dto.UpdateCollectionRequest{Name: &blank})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name cannot be empty")
}

func TestCollectionHandler_Update_Conflict(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	color := "#EF4444"
	mockLibrary.On("UpdateCollection", mock.Anything, "c1", services.CollectionUpdate{Color: &color}).Return(services.ErrRevisionConflict)

	rec := client.PATCH("/collections/c1", dto.UpdateCollectionRequest{Color: &color})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "REVISION_CONFLICT")
}

func TestCollectionHandler_Delete(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	mockLibrary.On("DeleteCollection", mock.Anything, "c1").Return(nil)

	rec := client.DELETE("/collections/c1")

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "collection deleted")
	mockLibrary.AssertExpectations(t)
}

func TestCollectionHandler_Delete_DefaultForbidden(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	mockLibrary.On("DeleteCollection", mock.Anything, models.DefaultCollectionID).Return(services.ErrDefaultCollection)

	rec := client.DELETE("/collections/default")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot delete default collection")
}

func TestCollectionHandler_Videos(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)
	fx := testutil.NewFixtures()
	gym := fx.Collection("Gym")
	first := fx.Video(testutil.WithCollection(gym.ID))
	second := fx.Video(testutil.WithCollection(gym.ID))

	mockLibrary.On("GetCollection", mock.Anything, gym.ID).Return(gym, nil)
	mockLibrary.On("GetVideosByCollection", mock.Anything, gym.ID).Return([]models.Video{*first, *second}, nil)

	rec := client.GET("/collections/" + gym.ID + "/videos?sort=oldest")

	testutil.AssertStatus(t, rec, http.StatusOK)
	var response []dto.VideoResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 2)
	assert.Equal(t, first.ID, response[0].ID)
}

func TestCollectionHandler_Videos_UnknownCollection(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	mockLibrary.On("GetCollection", mock.Anything, "missing").Return(nil, services.ErrCollectionNotFound)

	rec := client.GET("/collections/missing/videos")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockLibrary.AssertNotCalled(t, "GetVideosByCollection", mock.Anything, mock.Anything)
}

func TestCollectionHandler_Share(t *testing.T) {
	mockLibrary, client := setupCollectionTest(t)

	text := "Gym - 1 videos\n\n1. Leg day\n   https://youtu.be/legs"
	mockLibrary.On("ShareText", mock.Anything, "gym").Return(text, nil)
	mockLibrary.On("ShareText", mock.Anything, "empty").Return("", services.ErrEmptyCollection)

	rec := client.GET("/collections/gym/share")
	testutil.AssertStatus(t, rec, http.StatusOK)
	var response dto.ShareResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, text, response.Text)

	rec = client.GET("/collections/empty/share")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "collection has no videos")
}
