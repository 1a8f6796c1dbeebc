package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

// stubActivityService returns canned results per method.
type stubActivityService struct {
	activities   dto.ActivityMap
	activityErr  error
	signUpErr    error
	unregister   error
	lastActivity string
	lastEmail    string
}

func (s *stubActivityService) GetAllActivities(context.Context) (dto.ActivityMap, error) {
	return s.activities, s.activityErr
}

func (s *stubActivityService) GetActivityByName(_ context.Context, name string) (*dto.ActivityDetail, error) {
	if s.activityErr != nil {
		return nil, s.activityErr
	}
	detail, ok := s.activities[name]
	if !ok {
		return nil, apperrors.ErrActivityNotFound
	}
	return detail, nil
}

func (s *stubActivityService) SignUp(_ context.Context, activityName, email string) error {
	s.lastActivity, s.lastEmail = activityName, email
	return s.signUpErr
}

func (s *stubActivityService) Unregister(_ context.Context, activityName, email string) error {
	s.lastActivity, s.lastEmail = activityName, email
	return s.unregister
}

func setupRouter(svc *stubActivityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewActivityController(svc)
	activities := router.Group("/activities")
	activities.GET("", controller.GetAllActivities)
	activities.GET("/:activity_name", controller.GetActivityByName)
	activities.POST("/:activity_name/signup", controller.SignUp)
	activities.DELETE("/:activity_name/unregister", controller.Unregister)

	return router
}

func defaultStub() *stubActivityService {
	return &stubActivityService{
		activities: dto.ActivityMap{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
	}
}

func TestGetAllActivitiesEndpoint(t *testing.T) {
	router := setupRouter(defaultStub())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]dto.ActivityDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "Chess Club")
	assert.Equal(t, 12, body["Chess Club"].MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, body["Chess Club"].Participants)
}

func TestGetActivityByNameEndpoint(t *testing.T) {
	router := setupRouter(defaultStub())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.ActivityDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", body.Schedule)
}

func TestGetActivityByNameEndpoint_NotFound(t *testing.T) {
	router := setupRouter(defaultStub())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/activities/Knitting%20Circle", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Activity not found", body.Error.Message)
}

func TestSignUpEndpoint(t *testing.T) {
	stub := defaultStub()
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=new@mergington.edu", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Signed up new@mergington.edu for Chess Club", body.Message)
	assert.Equal(t, "Chess Club", stub.lastActivity)
	assert.Equal(t, "new@mergington.edu", stub.lastEmail)
}

func TestSignUpEndpoint_ActivityNotFound(t *testing.T) {
	stub := defaultStub()
	stub.signUpErr = apperrors.ErrActivityNotFound
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Knitting%20Circle/signup?email=new@mergington.edu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignUpEndpoint_AlreadyRegistered(t *testing.T) {
	stub := defaultStub()
	stub.signUpErr = apperrors.ErrAlreadyRegistered
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Student is already signed up", body.Error.Message)
}

func TestUnregisterEndpoint(t *testing.T) {
	stub := defaultStub()
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", body.Message)
}

func TestUnregisterEndpoint_NotRegistered(t *testing.T) {
	stub := defaultStub()
	stub.unregister = apperrors.ErrNotRegistered
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=stranger@mergington.edu", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Student is not signed up for this activity", body.Error.Message)
}

func TestUnregisterEndpoint_ActivityNotFound(t *testing.T) {
	stub := defaultStub()
	stub.unregister = apperrors.ErrActivityNotFound
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/Knitting%20Circle/unregister?email=x@mergington.edu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
