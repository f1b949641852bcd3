package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glkeru/kvote/internal/mocks"
	model "github.com/glkeru/kvote/internal/models"
	services "github.com/glkeru/kvote/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testMasterHandler(t *testing.T, db *mocks.MockMasterStorage) *MasterHandler {
	t.Helper()
	t.Setenv("KVOTE_JWT_SECRET", testSecret)
	auth, err := NewTokenVerifier()
	require.NoError(t, err)

	logger := zap.NewNop()
	return NewMasterHandler(db, services.NewMasterService(logger, db), auth, logger)
}

// обычный пользователь не проходит в админку
func TestMasterForbidden(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	handler := testMasterHandler(t, mocks.NewMockMasterStorage(cont))

	req := httptest.NewRequest(http.MethodGet, "/master/idols", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "user-1", false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, rec.Code, http.StatusForbidden)
}

func TestListIdolsHandler(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		ListIdols(gomock.Any()).
		Return([]model.Idol{
			{ID: uuid.New(), Name: "Jisoo", GroupName: "BLACKPINK"},
		}, nil)

	handler := testMasterHandler(t, db)

	req := httptest.NewRequest(http.MethodGet, "/master/idols", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, rec.Code, http.StatusOK)
	resp := struct {
		Success bool         `json:"success"`
		Data    []model.Idol `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	require.Equal(t, resp.Data[0].Name, "Jisoo")
}

func TestSaveIdolHandler(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		SaveIdol(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, idol model.Idol) (model.Idol, error) {
			idol.ID = uuid.New()
			return idol, nil
		})

	handler := testMasterHandler(t, db)

	body := `{"name": "Karina", "groupName": "aespa", "imageUrl": "https://cdn.example.com/karina.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/master/idols", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, rec.Code, http.StatusCreated)
}

func TestSaveIdolHandlerValidation(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	handler := testMasterHandler(t, mocks.NewMockMasterStorage(cont))

	req := httptest.NewRequest(http.MethodPost, "/master/idols", strings.NewReader(`{"name": "Karina"}`))
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestDeleteIdolHandler(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	id := uuid.New()
	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		DeleteIdol(gomock.Any(), id).
		Return(nil)

	handler := testMasterHandler(t, db)

	req := httptest.NewRequest(http.MethodDelete, "/master/idols/"+id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, rec.Code, http.StatusOK)
}

func TestDeleteIdolHandlerNotFound(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	id := uuid.New()
	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		DeleteIdol(gomock.Any(), id).
		Return(model.ErrNotFound)

	handler := testMasterHandler(t, db)

	req := httptest.NewRequest(http.MethodDelete, "/master/idols/"+id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, rec.Code, http.StatusNotFound)
}

func TestImportIdolsHandler(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		SaveIdol(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, idol model.Idol) (model.Idol, error) {
			return idol, nil
		})

	handler := testMasterHandler(t, db)

	csv := "name,groupName,imageUrl\nJisoo,BLACKPINK,\n,aespa,\n"
	req := httptest.NewRequest(http.MethodPost, "/master/idols/csv", strings.NewReader(csv))
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, rec.Code, http.StatusOK)
	resp := struct {
		Success bool `json:"success"`
		Data    struct {
			Imported int              `json:"imported"`
			Errors   []model.CSVError `json:"errors"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, resp.Data.Imported, 1)
	require.Len(t, resp.Data.Errors, 1)
	require.Equal(t, resp.Data.Errors[0].Line, 3)
}

func TestExportIdolsHandler(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockMasterStorage(cont)
	db.EXPECT().
		ListIdols(gomock.Any()).
		Return([]model.Idol{{Name: "Jisoo", GroupName: "BLACKPINK"}}, nil)

	handler := testMasterHandler(t, db)

	req := httptest.NewRequest(http.MethodGet, "/master/idols/csv", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin-1", true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, rec.Code, http.StatusOK)
	require.Equal(t, rec.Header().Get("Content-Type"), "text/csv; charset=utf-8")
	require.Contains(t, rec.Body.String(), "Jisoo,BLACKPINK")
}
