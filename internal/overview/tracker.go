package overview

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txpager/internal/bigjson"
	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/otterscan"
	"github.com/hedisam/txpager/internal/ringbuffer"
	"github.com/hedisam/txpager/internal/txrecord"
)

type GlobalCache interface {
	SetLastBlocks(blocks []cache.BlockSummary) error
	SetLastTxns(txs []cache.TxSummary) error
	SetGasPrice(wei *big.Int) error
	SetMaxPriorityFee(wei *big.Int) error
	SetLastUpdate(ms int64) error
	FavoriteAddresses() []string
	SetFavoriteTxns(groups []txrecord.Group) error
}

// Node is the chain data the overview is built from.
type Node interface {
	GasPrice(ctx context.Context) (*big.Int, error)
	MaxPriorityFee(ctx context.Context) (*big.Int, error)
	BlockByNumber(ctx context.Context, number int64) (*otterscan.Block, error)
	FetchBefore(ctx context.Context, address string, block uint64, count int) ([]txrecord.Group, error)
}

// Tracker keeps the most recent blocks and transactions of the chain in the global cache,
// together with the latest transactions of the favorite addresses.
type Tracker struct {
	logger  *logrus.Logger
	global  GlobalCache
	node    Node
	window  uint
	blocks  *ringbuffer.RingBuffer[*otterscan.Block]
	txLimit int
	now     func() time.Time
}

// New returns a tracker keeping the last blockWindow blocks and txLimit transactions.
func New(logger *logrus.Logger, global GlobalCache, node Node, blockWindow uint, txLimit int) *Tracker {
	return &Tracker{
		logger:  logger,
		global:  global,
		node:    node,
		window:  blockWindow,
		blocks:  ringbuffer.New[*otterscan.Block](blockWindow),
		txLimit: txLimit,
		now:     time.Now,
	}
}

// Start consumes in until it is closed or ctx is done.
func (t *Tracker) Start(ctx context.Context, in <-chan *otterscan.Block) {
	for block := range chans.ReceiveOrDoneSeq(ctx, in) {
		err := t.track(ctx, block)
		if err != nil {
			t.logger.WithFields(logrus.Fields{
				"block_hash":   block.Hash,
				"block_number": uint64(block.Number),
			}).WithError(err).Error("Failed to update overview")
			blocksFailedProcessing.Inc()
		}
	}
}

func (t *Tracker) track(ctx context.Context, block *otterscan.Block) error {
	if block == nil {
		return nil
	}

	logger := t.logger.WithContext(ctx).WithFields(logrus.Fields{
		"block_number": uint64(block.Number),
		"block_hash":   block.Hash,
		"parent_hash":  block.ParentHash,
	})

	// drop buffered blocks the new one doesn't build on
	for t.blocks.Size() > 0 {
		tail, _ := t.blocks.Back()
		if block.ParentHash == tail.Hash {
			break
		}
		logger.WithField("tail_hash", tail.Hash).Warn("Block reorganisation detected, dropping last buffered non matching block")
		t.blocks.DropBack()
		reorgDroppedBlocks.Inc()
	}
	if t.blocks.Size() == 0 {
		t.backfill(ctx, logger, block)
	}
	if t.blocks.IsFull() {
		t.blocks.Pop()
	}
	t.blocks.Push(block)

	recent := t.blocks.Newest()
	err := t.global.SetLastBlocks(blockSummaries(recent))
	if err != nil {
		return fmt.Errorf("set last blocks: %w", err)
	}
	txs := txSummaries(recent, t.txLimit)
	err = t.global.SetLastTxns(txs)
	if err != nil {
		return fmt.Errorf("set last transactions: %w", err)
	}

	t.updateFees(ctx, logger)
	t.updateFavorites(ctx, logger)

	err = t.global.SetLastUpdate(t.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("set last update: %w", err)
	}

	processedBlocks.Inc()
	logger.WithFields(logrus.Fields{
		"buffered_blocks": len(recent),
		"last_txs":        len(txs),
	}).Debug("Successfully updated overview")

	return nil
}

// backfill buffers the blocks preceding head, oldest first, so the overview shows a full
// window right away. It stops at the first block that can't be fetched or doesn't chain.
func (t *Tracker) backfill(ctx context.Context, logger *logrus.Entry, head *otterscan.Block) {
	var earlier []*otterscan.Block
	parent := head.ParentHash
	for n := int64(head.Number) - 1; n >= 0 && uint(len(earlier))+1 < t.window; n-- {
		b, err := t.node.BlockByNumber(ctx, n)
		if err != nil {
			logger.WithError(err).WithField("backfill_block", n).Warn("Failed to backfill overview block")
			failedBackfills.Inc()
			break
		}
		if b.Hash != parent {
			logger.WithField("backfill_block", n).Warn("Backfilled block does not chain, stopping backfill")
			break
		}
		earlier = append(earlier, b)
		parent = b.ParentHash
	}

	for i := len(earlier) - 1; i >= 0; i-- {
		t.blocks.Push(earlier[i])
	}
	if len(earlier) > 0 {
		logger.WithField("blocks", len(earlier)).Debug("Backfilled overview blocks")
	}
}

// updateFees refreshes the fee figures. A failed lookup keeps the previous value.
func (t *Tracker) updateFees(ctx context.Context, logger *logrus.Entry) {
	gas, err := t.node.GasPrice(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to get gas price")
		failedFeeRetrievals.Inc()
	} else if err = t.global.SetGasPrice(gas); err != nil {
		logger.WithError(err).Warn("Failed to cache gas price")
	}

	fee, err := t.node.MaxPriorityFee(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to get max priority fee")
		failedFeeRetrievals.Inc()
	} else if err = t.global.SetMaxPriorityFee(fee); err != nil {
		logger.WithError(err).Warn("Failed to cache max priority fee")
	}
}

// updateFavorites rebuilds the latest transactions of the favorite addresses. A failed
// lookup keeps the previous list.
func (t *Tracker) updateFavorites(ctx context.Context, logger *logrus.Entry) {
	favs := t.global.FavoriteAddresses()
	groups, err := t.favoriteTxns(ctx, favs)
	if err != nil {
		logger.WithError(err).Warn("Failed to get favorite transactions")
		failedFavoriteRetrievals.Inc()
		return
	}

	err = t.global.SetFavoriteTxns(groups)
	if err != nil {
		logger.WithError(err).Warn("Failed to cache favorite transactions")
	}
}

// favoriteTxns fetches the newest txLimit groups of every address and keeps the newest
// txLimit of the merged timeline.
func (t *Tracker) favoriteTxns(ctx context.Context, addresses []string) ([]txrecord.Group, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	batches := make([][]txrecord.Group, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range addresses {
		g.Go(func() error {
			groups, err := t.node.FetchBefore(gctx, addr, 0, t.txLimit)
			if err != nil {
				return fmt.Errorf("fetch transactions of %s: %w", addr, err)
			}
			batches[i] = groups
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	merged := txrecord.Merge(batches...)
	return merged[:min(len(merged), t.txLimit)], nil
}

func blockSummaries(blocks []*otterscan.Block) []cache.BlockSummary {
	out := make([]cache.BlockSummary, 0, len(blocks))
	for b := range slices.Values(blocks) {
		out = append(out, cache.BlockSummary{
			Number:     uint64(b.Number),
			Hash:       b.Hash,
			ParentHash: b.ParentHash,
			Timestamp:  int64(b.Timestamp),
			Miner:      b.Miner,
			TxCount:    len(b.Txs),
			GasUsed:    hexBig(b.GasUsed),
			BaseFee:    hexBig(b.BaseFee),
		})
	}
	return out
}

// txSummaries takes up to limit transactions from blocks given newest first. Within a block
// the later transactions are considered newer.
func txSummaries(blocks []*otterscan.Block, limit int) []cache.TxSummary {
	var out []cache.TxSummary
	for b := range slices.Values(blocks) {
		for i := len(b.Txs) - 1; i >= 0; i-- {
			if len(out) >= limit {
				return out
			}
			tx := b.Txs[i]
			out = append(out, cache.TxSummary{
				Hash:        tx.Hash,
				BlockNumber: uint64(b.Number),
				From:        tx.From,
				To:          tx.To,
				Value:       hexBig(tx.Value),
				Timestamp:   int64(b.Timestamp),
			})
		}
	}
	return out
}

func hexBig(v *hexutil.Big) *bigjson.Int {
	if v == nil {
		return nil
	}
	return bigjson.New(v.ToInt())
}
