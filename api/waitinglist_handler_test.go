package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/squashclub/court-booking-backend/api"
	auditmocks "github.com/squashclub/court-booking-backend/audit/mocks"
	"github.com/squashclub/court-booking-backend/member"
	"github.com/squashclub/court-booking-backend/waitinglist"
)

func setupWaitingListRouter(t *testing.T, m member.Member) (*gin.Engine, *waitinglist.Store, *auditmocks.MockLog) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := waitinglist.NewStore(filepath.Join(t.TempDir(), "waitinglist.json"))
	mockAudit := auditmocks.NewMockLog(ctrl)

	handler := api.NewWaitingListHandler(store, mockAudit, time.UTC)
	rg := router.Group("/api/v1/waitinglist")
	rg.Use(setMemberInContext(m))
	handler.Register(rg)

	return router, store, mockAudit
}

func TestWaitingListAddRoute(t *testing.T) {
	router, store, mockAudit := setupWaitingListRouter(t, testMember)

	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(gin.H{"date": "15/03/2099", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	assert.JSONEq(t, `{"message":"added to waiting list"}`, w.Body.String())

	entries, err := store.Entries("15/03/2099", "17:15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 101, entries[0].MemberNo)
	assert.Equal(t, "john.smith@example.com", entries[0].Email)
}

func TestWaitingListAddRoute_AlreadyPresent(t *testing.T) {
	router, store, mockAudit := setupWaitingListRouter(t, testMember)

	_, err := store.Add("15/03/2099", "17:15", waitinglist.Entry{MemberNo: 101, Status: "waiting"})
	require.NoError(t, err)

	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(gin.H{"date": "15/03/2099", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"already on waiting list"}`, w.Body.String())
}

func TestWaitingListAddRoute_NoEmail(t *testing.T) {
	noEmail := testMember
	noEmail.Email = ""

	router, _, mockAudit := setupWaitingListRouter(t, noEmail)

	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(gin.H{"date": "15/03/2099", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"no valid email address on file"}`, w.Body.String())
}

func TestWaitingListAddRoute_BadDate(t *testing.T) {
	router, _, _ := setupWaitingListRouter(t, testMember)

	body, _ := json.Marshal(gin.H{"date": "2099-03-15", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"date must be dd/mm/yyyy"}`, w.Body.String())
}

func TestWaitingListRemoveRoute(t *testing.T) {
	router, store, mockAudit := setupWaitingListRouter(t, testMember)

	_, err := store.Add("15/03/2099", "17:15", waitinglist.Entry{MemberNo: 101, Status: "waiting"})
	require.NoError(t, err)

	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(gin.H{"date": "15/03/2099", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"removed from waiting list"}`, w.Body.String())
}

func TestWaitingListRemoveRoute_NotListed(t *testing.T) {
	router, _, _ := setupWaitingListRouter(t, testMember)

	body, _ := json.Marshal(gin.H{"date": "15/03/2099", "timeSlot": "17:15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/waitinglist", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"not on waiting list"}`, w.Body.String())
}

func TestWaitingListListRoute(t *testing.T) {
	router, store, _ := setupWaitingListRouter(t, testMember)

	entry := waitinglist.Entry{
		MemberNo:  202,
		FirstName: "Anna",
		LastName:  "Jones",
		Email:     "anna.jones@example.com",
		Status:    "waiting",
	}

	_, err := store.Add("15/03/2099", "17:15", entry)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/waitinglist?date=15/03/2099&timeSlot=17:15", nil)
	router.ServeHTTP(w, req)

	entriesJson, _ := json.Marshal([]waitinglist.Entry{entry})
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(entriesJson), w.Body.String())
}

func TestWaitingListListRoute_Empty(t *testing.T) {
	router, _, _ := setupWaitingListRouter(t, testMember)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/waitinglist?date=15/03/2099&timeSlot=17:15", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
