package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arriqaaq/historymerkle/kvstore"
)

func newKVCmd() *cobra.Command {
	var puts []string
	var getKey string
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Drive the key-value overlay for a scripted sequence of puts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := kvstore.New()
			for _, kv := range puts {
				parts := strings.SplitN(kv, "=", 2)
				if len(parts) != 2 {
					return errors.Errorf("merklehist: malformed --put %q, want key=value", kv)
				}
				ordinal, err := store.Put([]byte(parts[0]), []byte(parts[1]))
				if err != nil {
					return errors.Wrap(err, "merklehist: kv put")
				}
				correlationID := uuid.New()
				log.Info().
					Str("key", parts[0]).
					Int("ordinal", ordinal).
					Str("correlation_id", correlationID.String()).
					Msg("merklehist: put")
			}

			if getKey != "" {
				entry, ok := store.Get([]byte(getKey))
				if !ok {
					fmt.Printf("%s: not found\n", getKey)
					return nil
				}
				fmt.Printf("%s=%s history=%v\n", entry.Key, entry.Value, store.History([]byte(getKey)))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&puts, "put", nil, "key=value pair to write, may be repeated")
	cmd.Flags().StringVar(&getKey, "get", "", "key to look up after the puts run")
	return cmd
}
