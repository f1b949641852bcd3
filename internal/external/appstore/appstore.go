package appstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"
)

// Проверка чеков App Store. Порядок эндпоинтов фиксирован: production, затем sandbox.
// Статус 21007 означает sandbox-чек - пробуем следующий эндпоинт.
// Статус 0 - чек валиден, все остальное - нет.

const (
	productionURL = "https://buy.itunes.apple.com/verifyReceipt"
	sandboxURL    = "https://sandbox.itunes.apple.com/verifyReceipt"

	statusValid   = 0
	statusSandbox = 21007
)

type ReceiptInfo struct {
	ProductID             string `json:"product_id"`
	ExpiresDateMs         string `json:"expires_date_ms"`
	TransactionID         string `json:"transaction_id"`
	OriginalTransactionID string `json:"original_transaction_id"`
	PurchaseDateMs        string `json:"purchase_date_ms"`
}

type VerifyResponse struct {
	Status            int           `json:"status"`
	LatestReceiptInfo []ReceiptInfo `json:"latest_receipt_info"`
}

type verifyRequest struct {
	ReceiptData            string `json:"receipt-data"`
	Password               string `json:"password"`
	ExcludeOldTransactions bool   `json:"exclude-old-transactions"`
}

type Client struct {
	endpoints []string
	secret    string
	client    *http.Client
}

func NewClient() (*Client, error) {
	// config
	secret := os.Getenv("APPSTORE_SHARED_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("env APPSTORE_SHARED_SECRET is not set")
	}
	return NewClientEndpoints([]string{productionURL, sandboxURL}, secret), nil
}

// для тестов и дополнительных окружений
func NewClientEndpoints(endpoints []string, secret string) *Client {
	return &Client{
		endpoints: endpoints,
		secret:    secret,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// опрос эндпоинтов по порядку, останавливаемся на первом окончательном ответе
func (c *Client) verify(ctx context.Context, receiptData string) (*VerifyResponse, error) {
	var last *VerifyResponse
	for _, url := range c.endpoints {
		resp, err := c.verifyURL(ctx, url, receiptData)
		if err != nil {
			return nil, err
		}
		last = resp
		if resp.Status != statusSandbox {
			return resp, nil
		}
	}
	return last, nil
}

func (c *Client) verifyURL(ctx context.Context, url string, receiptData string) (*VerifyResponse, error) {
	body, err := json.Marshal(verifyRequest{
		ReceiptData:            receiptData,
		Password:               c.secret,
		ExcludeOldTransactions: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("App Store HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	verified := &VerifyResponse{}
	err = json.Unmarshal(data, verified)
	if err != nil {
		return nil, err
	}
	return verified, nil
}

// Валидность чека
func (c *Client) VerifyReceipt(ctx context.Context, receiptData string) (bool, error) {
	resp, err := c.verify(ctx, receiptData)
	if err != nil {
		return false, err
	}
	return resp.Status == statusValid, nil
}

// Дата истечения подписки - максимальный expires_date_ms среди записей продукта.
// Нет ни одной записи - ошибка, запрос отклоняется целиком.
func (c *Client) SubscriptionExpiry(ctx context.Context, receiptData string, productID string) (time.Time, error) {
	resp, err := c.verify(ctx, receiptData)
	if err != nil {
		return time.Time{}, err
	}
	if resp.Status != statusValid {
		return time.Time{}, fmt.Errorf("receipt verification failed: %d", resp.Status)
	}

	var entries []ReceiptInfo
	for _, info := range resp.LatestReceiptInfo {
		if info.ProductID == productID {
			entries = append(entries, info)
		}
	}
	if len(entries) == 0 {
		return time.Time{}, fmt.Errorf("no subscription found in receipt")
	}

	sort.Slice(entries, func(i, j int) bool {
		a, _ := strconv.ParseInt(entries[i].ExpiresDateMs, 10, 64)
		b, _ := strconv.ParseInt(entries[j].ExpiresDateMs, 10, 64)
		return a > b
	})

	ms, err := strconv.ParseInt(entries[0].ExpiresDateMs, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad expires_date_ms: %w", err)
	}
	return time.UnixMilli(ms), nil
}
