package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arriqaaq/historymerkle"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Inspect a Merkle tree built from a list of blocks",
	}
	cmd.AddCommand(newTreeRootCmd())
	cmd.AddCommand(newTreeMembershipCmd())
	cmd.AddCommand(newTreeIncrementalCmd())
	return cmd
}

func readBlocks(path string) ([][]byte, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "merklehist: open blocks file")
		}
		defer f.Close()
		r = f
	}
	var blocks [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		blocks = append(blocks, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "merklehist: read blocks")
	}
	return blocks, nil
}

func newTreeRootCmd() *cobra.Command {
	var blocksFile string
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Build a tree from a block list and print its root digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(blocksFile)
			if err != nil {
				return err
			}
			t := merkletree.New(blocks)
			log.Debug().Int("size", t.Size()).Int("height", t.Height()).Msg("merklehist: built tree")
			fmt.Printf("root=%s size=%d height=%d\n", t.RootDigest().Hex(), t.Size(), t.Height())
			return nil
		},
	}
	cmd.Flags().StringVar(&blocksFile, "blocks-file", "-", "path to newline-delimited blocks, or - for stdin")
	return cmd
}

func newTreeMembershipCmd() *cobra.Command {
	var blocksFile string
	var index int
	cmd := &cobra.Command{
		Use:   "membership",
		Short: "Generate and verify a membership proof for a block index",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(blocksFile)
			if err != nil {
				return err
			}
			t := merkletree.New(blocks)
			pf, err := t.GenMembership(index)
			if err != nil {
				return errors.Wrap(err, "merklehist: generate membership proof")
			}
			leaf := merkletree.LeafHash(blocks[index])
			ok := merkletree.VerifyMembership(pf, t.RootDigest(), index, leaf)
			fmt.Printf("index=%d siblings=%d verified=%v\n", pf.Index, len(pf.Hashes), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&blocksFile, "blocks-file", "-", "path to newline-delimited blocks, or - for stdin")
	cmd.Flags().IntVar(&index, "index", 0, "0-based leaf index to prove")
	return cmd
}

func newTreeIncrementalCmd() *cobra.Command {
	var blocksFile string
	var i, j int
	cmd := &cobra.Command{
		Use:   "incremental",
		Short: "Generate and verify an incremental proof between two versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(blocksFile)
			if err != nil {
				return err
			}
			if j < 0 || j >= len(blocks) {
				return errors.Errorf("merklehist: j=%d out of range for %d blocks", j, len(blocks))
			}
			if i < 0 || i > j {
				return errors.Errorf("merklehist: requires 0 <= i <= j, got i=%d j=%d", i, j)
			}
			ti := merkletree.New(blocks[:i+1])
			tj := merkletree.New(blocks[:j+1])
			pf, err := tj.GenIncremental(i, j)
			if err != nil {
				return errors.Wrap(err, "merklehist: generate incremental proof")
			}
			ok := merkletree.VerifyIncremental(pf, i, j, ti.RootDigest(), tj.RootDigest())
			fmt.Printf("i=%d j=%d verified=%v\n", i, j, ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&blocksFile, "blocks-file", "-", "path to newline-delimited blocks, or - for stdin")
	cmd.Flags().IntVar(&i, "i", 0, "earlier 0-based version index")
	cmd.Flags().IntVar(&j, "j", 0, "later 0-based version index")
	return cmd
}
