package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finview-dev/finview/internal/apierr"
	"github.com/finview-dev/finview/internal/model"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]model.Account{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokens(staticTokens("tok-123")))
	_, err := c.Accounts().List(context.Background(), AccountFilter{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NormalizesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"errors.bills.alreadyPaid","code":"ALREADY_PAID"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Bills().Pay(context.Background(), "b1")
	require.Error(t, err)

	e := apierr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, "errors.bills.alreadyPaid", e.Message)
	assert.Equal(t, "ALREADY_PAID", e.Code)
	assert.Equal(t, http.StatusConflict, e.Status)
}

func TestClient_UnparseableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Accounts().Get(context.Background(), "a1")
	require.Error(t, err)

	e := apierr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusBadGateway, e.Status)
	assert.Contains(t, e.Message, "502")
}

func TestClient_NetworkFailure(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Goals().Get(context.Background(), "g1")
	require.Error(t, err)
	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestAccountService_CreateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/accounts", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in CreateAccountInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		out := model.Account{ID: "a9", Name: in.Name, Type: in.Type, Currency: in.Currency, IsActive: true}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	acct, err := c.Accounts().Create(context.Background(), CreateAccountInput{
		Name:     "Everyday",
		Type:     model.AccountTypeChecking,
		Currency: "USD",
		Balance:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "a9", acct.ID)
	assert.Equal(t, "Everyday", acct.Name)
	assert.True(t, acct.IsActive)
}

func TestCategoryService_DeletePassesReassignTo(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotQuery = r.URL.Query().Get("reassignTo")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Categories().Delete(context.Background(), "c1", "c2")
	require.NoError(t, err)
	assert.Equal(t, "c2", gotQuery)
}

func TestGoalService_ListDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		page := model.Page[model.Goal]{
			Items: []model.Goal{{ID: "g1", Name: "Emergency fund"}},
			Total: 1, Page: 1, PageSize: 20,
		}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.Goals().List(context.Background(), GoalFilter{Status: model.GoalStatusActive})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Emergency fund", page.Items[0].Name)
}

func TestTransactionService_ImportCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/import/csv", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "txns.csv", hdr.Filename)

		_ = json.NewEncoder(w).Encode(model.ImportResult{
			Imported: 2,
			Failed:   1,
			Errors:   []string{"row 3: invalid amount"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	csv := "date,amount,description\n2026-01-02,12.50,Coffee\n2026-01-03,9.00,Lunch\n2026-01-04,abc,Bad\n"
	res, err := c.Transactions().ImportCSV(context.Background(), "txns.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "row 3")
}

func TestTransactionService_ExportCSVReturnsBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a1", body["accountId"])

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("date,amount\n2026-01-02,12.50\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	blob, err := c.Transactions().ExportCSV(context.Background(), TransactionFilter{AccountID: "a1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(blob), "date,amount"))
}
