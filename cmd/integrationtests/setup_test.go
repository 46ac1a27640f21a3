package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	market "github.com/she110ff/metalcat-sub002/internal/marketService"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/repository"
	"github.com/she110ff/metalcat-sub002/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by the service under test
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// SetupTestRouterWithAuctions initializes the router and seeds the repo with auctions.
func SetupTestRouterWithAuctions(t *testing.T, auctions ...models.AuctionRecord) (*gin.Engine, *testClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		require.NoError(t, repo.CreateAuction(a))
	}

	clock := &testClock{now: start}
	service := market.NewMarketService(repo, market.WithClock(clock.Now), market.WithLocale(models.LocaleKO))
	return server.SetupRouter(service), clock
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

func scrapAuction(id string, tt models.TransactionType, days int) models.AuctionRecord {
	return models.AuctionRecord{
		ID:              id,
		Title:           "고철 " + id,
		TransactionType: tt,
		StartingPrice:   100000,
		ApprovalStatus:  models.ApprovalApproved,
		CreatedAt:       start,
		EndTime:         start.Add(time.Duration(days) * 24 * time.Hour),
		Address:         models.Address{City: "인천광역시", District: "서구"},
		Details:         &models.ScrapDetails{Quantity: decimal.NewFromInt(3), Unit: "ton"},
	}
}

func machineryAuction(id string) models.AuctionRecord {
	a := scrapAuction(id, models.TransactionNormal, 3)
	a.Title = "굴삭기 " + id
	a.Address = models.Address{City: "부산광역시", District: "사하구"}
	a.Details = &models.MachineryDetails{Manufacturer: "Doosan", ModelName: "DX225", ManufacturingDate: "2019-04-01", Quantity: 1}
	return a
}

func demolitionAuction(id string, nested models.TransactionType) models.AuctionRecord {
	a := scrapAuction(id, models.TransactionNormal, 1)
	a.Title = "철거 " + id
	a.Details = &models.DemolitionDetails{TransactionType: nested}
	return a
}
