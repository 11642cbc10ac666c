package projection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Params is the fixed set of actuarial inputs the projection service
// takes. The service itself is a black box to us.
type Params struct {
	PolicyCap           decimal.Decimal `json:"policy_cap"`
	MaxLoanToValue      decimal.Decimal `json:"max_loan_to_value"`
	StartingCashValue   decimal.Decimal `json:"starting_cash_value"`
	GrowthRate          decimal.Decimal `json:"growth_rate"`
	StartingLoanBalance decimal.Decimal `json:"starting_loan_balance"`
	LoanRate            decimal.Decimal `json:"loan_rate"`
	TargetDSCR          decimal.Decimal `json:"target_dscr"`
}

// Client fetches a payment projection. Callers treat failures as
// non-fatal: a vault write proceeds without a projection attached.
type Client interface {
	FetchProjection(ctx context.Context, token string, params Params) (map[string]interface{}, error)
}

type RESTClient struct {
	cfg        *Config
	httpClient *http.Client
}

func NewRESTClient(cfg *Config) *RESTClient {
	return &RESTClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.ProjectionAPITimeout) * time.Second,
		},
	}
}

func (c *RESTClient) FetchProjection(ctx context.Context, token string, params Params) (map[string]interface{}, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(params); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ProjectionAPIAddress+"/projections", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("projection api responded with %d: %s", resp.StatusCode, msg)
	}
	result := map[string]interface{}{}
	err = json.NewDecoder(resp.Body).Decode(&result)
	return result, err
}
