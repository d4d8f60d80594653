package otterscan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txpager/internal/txrecord"
)

// LatestBlock requests the head of the chain from BlockByNumber.
const LatestBlock int64 = -1

var (
	// ErrNotFound is returned when the node answers with a null result, e.g. for a block that
	// hasn't been minted yet.
	ErrNotFound = errors.New("not found")
)

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	nodeAddr   string
	limiter    *rate.Limiter
	online     atomic.Bool
	ids        atomic.Uint64
}

type Option func(*Client)

// WithRateLimit caps the outgoing requests per second. A non-positive rps disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func New(logger *logrus.Logger, httpClient *http.Client, nodeAddr string, opts ...Option) *Client {
	c := &Client{
		logger:     logger,
		httpClient: httpClient,
		nodeAddr:   nodeAddr,
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.online.Store(true)

	return c
}

// Online reports whether the last request reached the node.
func (c *Client) Online() bool {
	return c.online.Load()
}

// SearchTransactionsBefore returns up to pageSize transactions of address mined strictly before
// block, newest first. Block 0 searches from the chain head. Results always cover whole
// blocks so the batch may exceed pageSize.
func (c *Client) SearchTransactionsBefore(ctx context.Context, address string, block uint64, pageSize int) (*txrecord.SearchBatch, error) {
	return c.search(ctx, searchTransactionsBefore, address, block, pageSize)
}

// SearchTransactionsAfter returns up to pageSize transactions of address mined strictly after
// block. Block 0 searches from genesis.
func (c *Client) SearchTransactionsAfter(ctx context.Context, address string, block uint64, pageSize int) (*txrecord.SearchBatch, error) {
	return c.search(ctx, searchTransactionsAfter, address, block, pageSize)
}

func (c *Client) search(ctx context.Context, method rpcMethod, address string, block uint64, pageSize int) (*txrecord.SearchBatch, error) {
	var batch txrecord.SearchBatch
	err := c.call(ctx, method, &batch, address, block, pageSize)
	if err != nil {
		return nil, fmt.Errorf("search transactions of %s: %w", address, err)
	}
	return &batch, nil
}

// FetchBefore returns the normalized transaction groups of address older than block.
func (c *Client) FetchBefore(ctx context.Context, address string, block uint64, count int) ([]txrecord.Group, error) {
	batch, err := c.SearchTransactionsBefore(ctx, address, block, count)
	if err != nil {
		return nil, err
	}
	return txrecord.Normalize(batch), nil
}

// FetchAfter returns the normalized transaction groups of address newer than block.
func (c *Client) FetchAfter(ctx context.Context, address string, block uint64, count int) ([]txrecord.Group, error) {
	batch, err := c.SearchTransactionsAfter(ctx, address, block, count)
	if err != nil {
		return nil, err
	}
	return txrecord.Normalize(batch), nil
}

// GasPrice returns the current gas price in wei.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, gasPrice)
}

// MaxPriorityFee returns the suggested priority fee per gas in wei.
func (c *Client) MaxPriorityFee(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, maxPriorityFeePerGas)
}

func (c *Client) callBig(ctx context.Context, method rpcMethod) (*big.Int, error) {
	var v hexutil.Big
	err := c.call(ctx, method, &v)
	if err != nil {
		return nil, err
	}
	return v.ToInt(), nil
}

// BlockByNumber returns the block with its full transactions. Use LatestBlock for the head.
func (c *Client) BlockByNumber(ctx context.Context, number int64) (*Block, error) {
	requested := "latest"
	if number != LatestBlock {
		requested = hexutil.EncodeUint64(uint64(number))
	}

	var block Block
	// 'true' requests full transaction objects
	err := c.call(ctx, getBlockByNumber, &block, requested, true)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", requested, err)
	}
	return &block, nil
}

// Stream polls the node every pollTick and emits each new head once. The channel is closed
// when ctx is done.
func (c *Client) Stream(ctx context.Context, pollTick time.Duration) <-chan *Block {
	out := make(chan *Block)

	go func() {
		defer close(out)

		t := time.NewTicker(pollTick)
		defer t.Stop()

		next := LatestBlock
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			block, err := c.BlockByNumber(ctx, next)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				c.logger.WithError(err).Error("Failed to get next block")
				failedBlockRetrievals.Inc()
				continue
			}

			number := int64(block.Number)
			if next != LatestBlock && number != next {
				c.logger.WithFields(logrus.Fields{
					"requested": next,
					"received":  number,
				}).Warn("Node returned an unexpected block, skipping")
				continue
			}

			c.logger.WithFields(logrus.Fields{
				"number": number,
				"hash":   block.Hash,
			}).Debug("Received block")
			if !chans.SendOrDone(ctx, out, block) {
				return
			}
			next = number + 1
			retrievedBlocks.Inc()
		}
	}()

	return out
}

func (c *Client) call(ctx context.Context, method rpcMethod, out any, params ...any) error {
	if params == nil {
		params = []any{}
	}
	data, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.ids.Add(1),
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	err = c.limiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	body, err := c.doRequestWithRetry(ctx, method, data)
	if err != nil {
		failedCalls.WithLabelValues(string(method)).Inc()
		return err
	}

	var resp rpcResponse
	err = json.Unmarshal(body, &resp)
	if err != nil {
		failedCalls.WithLabelValues(string(method)).Inc()
		return fmt.Errorf("decode response body: %w", err)
	}
	if resp.Error != nil {
		failedCalls.WithLabelValues(string(method)).Inc()
		return resp.Error
	}
	if len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
		return ErrNotFound
	}

	err = json.Unmarshal(resp.Result, out)
	if err != nil {
		failedCalls.WithLabelValues(string(method)).Inc()
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func (c *Client) doRequestWithRetry(ctx context.Context, method rpcMethod, data []byte) ([]byte, error) {
	bk := backoff.WithContext(newExponentialBackoffConfig(), ctx)
	body, err := backoff.RetryWithData[[]byte](func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nodeAddr, bytes.NewReader(data))
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("create new http request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Length", strconv.Itoa(len(data)))

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			c.online.Store(false)
			c.logger.WithField("method", method).WithError(err).Error("Failed to make http request, retrying...")
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		defer resp.Body.Close()
		c.online.Store(true)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			c.logger.WithFields(logrus.Fields{
				"method": method,
				"status": resp.StatusCode,
			}).Warn("Node is unavailable, retrying...")
			return nil, fmt.Errorf("received unexpected status: %s", resp.Status)
		case resp.StatusCode != http.StatusOK:
			c.logger.WithField("response", string(body)).Error("Unexpected status code from the node")
			return nil, backoff.Permanent(fmt.Errorf("received unexpected status: %s", resp.Status))
		}

		return body, nil
	}, bk)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
