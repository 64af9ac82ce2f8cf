package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/abi"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/allocator"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/config"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

type runFlags struct {
	itemSize  int
	allocated int
	pops      []int
	popLast   int
}

func newRunCommand(gf *globalFlags) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load records from stdin, pop, and print the rest",
		Long: `Reads standard input in chunks of itemsize bytes and appends each chunk to
a new list. A final short chunk is padded with zeros. Records selected with
--pop are then removed in order (negative indexes count from the end), and
the remaining records are printed as hex, one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), gf)
			if err != nil {
				return err
			}
			applyRunFlags(cmd.Flags(), &rf, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			api := abi.NewABI(
				domain.WithABILogger(logrus.StandardLogger()),
				domain.WithABIListOptions(cfg.ListOptions()...),
			)
			return runList(cmd.Context(), api, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, rf)
		},
	}
	addRunFlags(cmd.Flags(), &rf)
	return cmd
}

func addRunFlags(fs *pflag.FlagSet, rf *runFlags) {
	fs.IntVarP(&rf.itemSize, "itemsize", "s", 0, "record size in bytes (overrides config)")
	fs.IntVarP(&rf.allocated, "allocated", "a", 0, "initial capacity in records (overrides config)")
	fs.IntSliceVarP(&rf.pops, "pop", "p", nil, "index to pop, repeatable")
	fs.IntVar(&rf.popLast, "pop-last", 0, "number of records to pop from the end")
}

func applyRunFlags(fs *pflag.FlagSet, rf *runFlags, cfg *config.Config) {
	if fs.Changed("itemsize") {
		cfg.ItemSize = rf.itemSize
	}
	if fs.Changed("allocated") {
		cfg.Allocated = rf.allocated
	}
}

func runList(ctx context.Context, api *abi.ABI, in io.Reader, out io.Writer, cfg config.Config, rf runFlags) error {
	st, h := api.New(cfg.ItemSize, cfg.Allocated)
	if !st.OK() {
		return fmt.Errorf("creating list: %w", st.Err())
	}
	defer api.Free(h)

	// the list allocates lazily, so a record buffer is the first real
	// allocation of itemsize bytes
	scratch := allocator.NewAllocator()
	rec, err := scratch.Allocate(cfg.ItemSize)
	if err != nil {
		return fmt.Errorf("allocating record buffer: %w", err)
	}
	defer scratch.Release(rec)

	if err := load(ctx, api, h, in, rec); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"handle": h, "records": api.Length(h)}).Debug("records loaded")

	for _, i := range rf.pops {
		idx := i
		if idx < 0 {
			idx += api.Length(h)
		}
		if st := api.Pop(h, idx, rec); !st.OK() {
			return fmt.Errorf("pop %d: %w", i, st.Err())
		}
		logrus.WithFields(logrus.Fields{"index": i, "record": hex.EncodeToString(rec)}).Debug("popped")
	}
	for range rf.popLast {
		if st := api.Pop(h, api.Length(h)-1, rec); !st.OK() {
			return fmt.Errorf("pop last: %w", st.Err())
		}
	}

	return dump(api, h, out)
}

func load(ctx context.Context, api *abi.ABI, h domain.Handle, in io.Reader, rec []byte) error {
	r := bufio.NewReader(contextio.NewReader(ctx, in))
	for {
		n, err := io.ReadFull(r, rec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		short := errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !short {
			return fmt.Errorf("reading record %d: %w", api.Length(h), err)
		}
		clear(rec[n:])
		if st := api.Append(h, rec); !st.OK() {
			return fmt.Errorf("appending record %d: %w", api.Length(h), st.Err())
		}
		if short {
			return nil
		}
	}
}

func dump(api *abi.ABI, h domain.Handle, out io.Writer) error {
	storage := make([]byte, api.IterSizeof())
	api.IterInit(storage, h)
	w := bufio.NewWriter(out)
	for {
		st, rec := api.IterNext(storage)
		if st == domain.StatusIterExhausted {
			break
		}
		if !st.OK() {
			return fmt.Errorf("iterating: %w", st.Err())
		}
		if _, err := fmt.Fprintln(w, hex.EncodeToString(rec)); err != nil {
			return err
		}
	}
	return w.Flush()
}
