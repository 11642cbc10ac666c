package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the core banking persistence API. Every call is attempted
// exactly once; callers see a single generic transport error shape and do
// not distinguish error subtypes.
type Client interface {
	GetVault(ctx context.Context, token, bankRef, vaultId string) (*Vault, error)
	UpdateVault(ctx context.Context, token, bankRef, vaultId string, update VaultUpdate) (*Vault, error)
	UpdateAccount(ctx context.Context, token, accountId string, update AccountUpdate) (*Account, error)
}

type RESTClient struct {
	cfg        *Config
	httpClient *http.Client
}

func NewRESTClient(cfg *Config) *RESTClient {
	return &RESTClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.BankAPITimeout) * time.Second,
		},
	}
}

func (c *RESTClient) GetVault(ctx context.Context, token, bankRef, vaultId string) (*Vault, error) {
	url := fmt.Sprintf("%s/banks/%s/vaults/%s", c.cfg.BankAPIAddress, bankRef, vaultId)
	vault := &Vault{}
	err := c.do(ctx, http.MethodGet, url, token, nil, vault)
	if err != nil {
		return nil, err
	}
	return vault, nil
}

func (c *RESTClient) UpdateVault(ctx context.Context, token, bankRef, vaultId string, update VaultUpdate) (*Vault, error) {
	url := fmt.Sprintf("%s/banks/%s/vaults/%s", c.cfg.BankAPIAddress, bankRef, vaultId)
	vault := &Vault{}
	err := c.do(ctx, http.MethodPut, url, token, update, vault)
	if err != nil {
		return nil, err
	}
	return vault, nil
}

func (c *RESTClient) UpdateAccount(ctx context.Context, token, accountId string, update AccountUpdate) (*Account, error) {
	url := fmt.Sprintf("%s/accounts/%s", c.cfg.BankAPIAddress, accountId)
	account := &Account{}
	err := c.do(ctx, http.MethodPut, url, token, update, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (c *RESTClient) do(ctx context.Context, method, url, token string, body interface{}, result interface{}) error {
	var payload io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		payload = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bank api: %s %s responded with %d: %s", method, url, resp.StatusCode, msg)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
