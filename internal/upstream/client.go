package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leadspring/attribution-go/internal/models"
)

// Commands the two upstreams answer. The sales service serves leads and
// deals; the cost-importer serves spend ledger entries.
const (
	CmdFindLeads = "leads.find"
	CmdFindDeals = "deals.find"
	CmdFindCosts = "costs.find"
)

type Options struct {
	Timeout    time.Duration // per-attempt deadline
	Retries    int           // additional attempts after the first
	RetryDelay time.Duration
}

// Client is a long-lived handle to one upstream service, invoked
// command-style: POST <base>/rpc with {"cmd": ..., "data": filters}.
// This subsystem only ever reads through it.
type Client struct {
	name  string
	base  string
	httpc *http.Client
	opts  Options
	log   *slog.Logger
}

func NewClient(name, baseURL string, opts Options, log *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 300 * time.Millisecond
	}
	return &Client{
		name:  name,
		base:  baseURL,
		httpc: &http.Client{},
		opts:  opts,
		log:   log,
	}
}

type rpcRequest struct {
	Cmd  string         `json:"cmd"`
	Data models.Filters `json:"data"`
}

func (c *Client) call(ctx context.Context, cmd string, f models.Filters, dst any) error {
	body, err := json.Marshal(rpcRequest{Cmd: cmd, Data: f})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/rpc", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: non-2xx %d body=%s", c.name, cmd, resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
