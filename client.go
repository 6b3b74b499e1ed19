package bkper

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production Bkper REST API endpoint.
const DefaultBaseURL = "https://app.bkper.com/_ah/api/bkper/v5"

// errNotFound is returned by do on a 404; callers wrap it into a
// NotFoundError naming the kind and id they were resolving.
var errNotFound = errors.New("not found")

// Client is a thin client for the Bkper REST API.
//
// It performs no retries: transient failures are surfaced unchanged to
// the caller. Pass the client explicitly to the code that needs it
// rather than holding it as process-wide state.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logrus.Logger
}

// NewClient creates a Client for the given endpoint. An empty baseURL
// selects the production API. GET responses are cached on disk with a
// daily expiry; mutating requests always hit the network.
func NewClient(baseURL, apiKey string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Transport: &diskCache{base: http.DefaultTransport, log: log}},
		log:     log,
	}
}

// diskCache implements a simple disk cache for HTTP GET responses.
type diskCache struct {
	base http.RoundTripper
	log  *logrus.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet || !cacheable(req.URL.Path) {
		return c.base.RoundTrip(req)
	}

	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		c.log.WithError(err).Debug("cache write err (ignored)")
	}
	return resp, nil
}

// cacheable reports whether a path serves data stable enough to cache
// for a day. Transactions and balances are always fetched fresh: a
// merge must decide on live records.
func cacheable(path string) bool {
	return !strings.Contains(path, "/transactions") && !strings.Contains(path, "/balances")
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// do performs one API call, marshaling body in and the response out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot marshal %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("bkper api call")

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cannot %s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read %s %s response: %w", method, path, err)
	}
	return json.Unmarshal(content, out)
}

// items is the wrapper shape of every list endpoint.
type items[T any] struct {
	Items []T `json:"items"`
}

// ListBooks lists the books the caller has access to.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var list items[Book]
	if err := c.do(ctx, http.MethodGet, "/books", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// GetBook fetches one book with its formatting configuration.
func (c *Client) GetBook(ctx context.Context, bookID string) (*Book, error) {
	var book Book
	err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID), nil, nil, &book)
	if errors.Is(err, errNotFound) {
		return nil, &NotFoundError{Kind: "book", ID: bookID}
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetTransaction fetches one transaction of a book.
func (c *Client) GetTransaction(ctx context.Context, bookID, transactionID string) (*Transaction, error) {
	var tx Transaction
	path := "/books/" + url.PathEscape(bookID) + "/transactions/" + url.PathEscape(transactionID)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &tx)
	if errors.Is(err, errNotFound) {
		return nil, &NotFoundError{Kind: "transaction", ID: transactionID}
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListTransactions lists transactions of a book matching a query
// (empty query lists the most recent ones).
func (c *Client) ListTransactions(ctx context.Context, bookID, query string) ([]Transaction, error) {
	var q url.Values
	if query != "" {
		q = url.Values{"query": {query}}
	}
	var list items[Transaction]
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/transactions", q, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// CreateTransaction creates a draft transaction in a book.
func (c *Client) CreateTransaction(ctx context.Context, bookID string, tx *Transaction) (*Transaction, error) {
	var created Transaction
	if err := c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(bookID)+"/transactions", nil, tx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction updates an existing transaction. The id carried by
// tx selects the record.
func (c *Client) UpdateTransaction(ctx context.Context, bookID string, tx *Transaction) (*Transaction, error) {
	var updated Transaction
	err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(bookID)+"/transactions", nil, tx, &updated)
	if errors.Is(err, errNotFound) {
		return nil, &NotFoundError{Kind: "transaction", ID: tx.ID}
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PostTransaction finalizes a draft into the ledger.
func (c *Client) PostTransaction(ctx context.Context, bookID, transactionID string) error {
	return c.transactionAction(ctx, bookID, transactionID, "post")
}

// TrashTransaction marks a transaction as trashed. Trashing an already
// trashed transaction is a no-op on the backend, so the call is safely
// retryable.
func (c *Client) TrashTransaction(ctx context.Context, bookID, transactionID string) error {
	return c.transactionAction(ctx, bookID, transactionID, "trash")
}

// RestoreTransaction restores a trashed transaction.
func (c *Client) RestoreTransaction(ctx context.Context, bookID, transactionID string) error {
	return c.transactionAction(ctx, bookID, transactionID, "restore")
}

func (c *Client) transactionAction(ctx context.Context, bookID, transactionID, action string) error {
	path := "/books/" + url.PathEscape(bookID) + "/transactions/" + url.PathEscape(transactionID) + "/" + action
	err := c.do(ctx, http.MethodPatch, path, nil, nil, nil)
	if errors.Is(err, errNotFound) {
		return &NotFoundError{Kind: "transaction", ID: transactionID}
	}
	return err
}

// ListAccounts lists the accounts of a book.
func (c *Client) ListAccounts(ctx context.Context, bookID string) ([]Account, error) {
	var list items[Account]
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/accounts", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// GetAccount fetches one account of a book.
func (c *Client) GetAccount(ctx context.Context, bookID, accountID string) (*Account, error) {
	var account Account
	path := "/books/" + url.PathEscape(bookID) + "/accounts/" + url.PathEscape(accountID)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &account)
	if errors.Is(err, errNotFound) {
		return nil, &NotFoundError{Kind: "account", ID: accountID}
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount creates an account in a book.
func (c *Client) CreateAccount(ctx context.Context, bookID string, account *Account) (*Account, error) {
	var created Account
	if err := c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(bookID)+"/accounts", nil, account, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListGroups lists the groups of a book.
func (c *Client) ListGroups(ctx context.Context, bookID string) ([]Group, error) {
	var list items[Group]
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/groups", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// QueryBalances runs a balances query on a book.
func (c *Client) QueryBalances(ctx context.Context, bookID, query string) ([]Balance, error) {
	q := url.Values{"query": {query}}
	var payload any
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/balances", q, nil, &payload); err != nil {
		return nil, err
	}
	return parseBalanceMatrix(payload)
}

// ListApps lists the apps of the caller.
func (c *Client) ListApps(ctx context.Context) ([]App, error) {
	var list items[App]
	if err := c.do(ctx, http.MethodGet, "/apps", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// CreateApp registers a new app.
func (c *Client) CreateApp(ctx context.Context, app *App) (*App, error) {
	var created App
	if err := c.do(ctx, http.MethodPost, "/apps", nil, app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateApp updates an existing app.
func (c *Client) UpdateApp(ctx context.Context, app *App) (*App, error) {
	var updated App
	err := c.do(ctx, http.MethodPut, "/apps", nil, app, &updated)
	if errors.Is(err, errNotFound) {
		return nil, &NotFoundError{Kind: "app", ID: app.ID}
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
