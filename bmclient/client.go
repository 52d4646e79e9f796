package bmclient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/blockmerkle"
	"github.com/gordian-engine/blockmerkle/bmhash"
	"github.com/gordian-engine/blockmerkle/internal/bmtrace"
)

// Client reads blocks from a [blockmerkle.Tree]
// and verifies each read independently of the tree.
type Client struct {
	log *slog.Logger

	tracer bmtrace.Tracer

	tree *blockmerkle.Tree
	h    bmhash.Hasher
}

// ClientConfig is the configuration passed to [NewClient].
type ClientConfig struct {
	// Hasher used to recompute proof chains.
	// It must produce the same hashes as the tree's hasher,
	// but it is supplied separately so the client
	// does not have to trust the tree's choice.
	// Required.
	Hasher bmhash.Hasher

	// Optional; defaults to a no-op provider.
	TracerProvider bmtrace.TracerProvider
}

// ReadResult is the result of [*Client.Read] and [*Client.ReadTrusted].
type ReadResult struct {
	Data    []byte
	Proof   blockmerkle.ProofChain
	Verdict Verdict
}

// NewClient returns a new Client backed by tree.
func NewClient(log *slog.Logger, tree *blockmerkle.Tree, cfg ClientConfig) *Client {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: ClientConfig.Hasher must not be nil"))
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = bmtrace.NopTracerProvider()
	}

	c := &Client{
		log: log,

		tracer: tp.Tracer("github.com/gordian-engine/blockmerkle/bmclient"),

		tree: tree,
		h:    cfg.Hasher,
	}

	c.log.Info("Client initialized", "leaves", tree.LeafCount())
	return c
}

// Read reads block blockID from the tree and verifies its proof chain
// with [Verify].
// The returned error is only non-nil if the tree rejected the read;
// a failed verification is reported through [ReadResult.Verdict].
func (c *Client) Read(ctx context.Context, blockID int) (ReadResult, error) {
	_, span := c.tracer.Start(
		ctx,
		"read block",
		bmtrace.WithAttributes(bmtrace.BlockIDAttr(blockID)),
	)
	defer span.End()

	data, proof, err := c.tree.Read(blockID)
	if err != nil {
		bmtrace.SpanError(span, err)
		return ReadResult{}, fmt.Errorf("failed to read block %d: %w", blockID, err)
	}

	span.AddEvent("verify proof")
	v := Verify(c.h, proof, uint32(c.tree.LevelCount()))
	c.report(span, blockID, v)

	return ReadResult{Data: data, Proof: proof, Verdict: v}, nil
}

// ReadTrusted is like [*Client.Read],
// but verifies with [VerifyTrusted] against trustedRoot,
// which should come from a source other than the tree itself.
func (c *Client) ReadTrusted(ctx context.Context, blockID int, trustedRoot []byte) (ReadResult, error) {
	_, span := c.tracer.Start(
		ctx,
		"read block with trusted root",
		bmtrace.WithAttributes(
			bmtrace.BlockIDAttr(blockID),
			bmtrace.LazyHexAttr("trusted_root", trustedRoot),
		),
	)
	defer span.End()

	data, proof, err := c.tree.Read(blockID)
	if err != nil {
		bmtrace.SpanError(span, err)
		return ReadResult{}, fmt.Errorf("failed to read block %d: %w", blockID, err)
	}

	span.AddEvent("verify proof against trusted root")
	v := VerifyTrusted(c.h, blockID, data, proof, uint32(c.tree.LevelCount()), trustedRoot)
	c.report(span, blockID, v)

	return ReadResult{Data: data, Proof: proof, Verdict: v}, nil
}

// Write forwards to [*blockmerkle.Tree.Write].
func (c *Client) Write(ctx context.Context, blockID int, data []byte) error {
	_, span := c.tracer.Start(
		ctx,
		"write block",
		bmtrace.WithAttributes(
			bmtrace.BlockIDAttr(blockID),
			bmtrace.DataSizeAttr(len(data)),
		),
	)
	defer span.End()

	if err := c.tree.Write(blockID, data); err != nil {
		bmtrace.SpanError(span, err)
		return fmt.Errorf("failed to write block %d: %w", blockID, err)
	}

	c.log.Debug("Wrote block", "block", blockID, "size", len(data))
	return nil
}

func (c *Client) report(span bmtrace.Span, blockID int, v Verdict) {
	span.SetAttributes(bmtrace.StringerAttr("verdict", v))

	if v == Valid {
		c.log.Info("Verified block", "block", blockID)
		return
	}

	c.log.Warn("Block failed verification", "block", blockID)
}
