package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/codahale/keccak1600/hazmat/keccak"
)

func checkRounds(rounds int) error {
	if rounds < 1 || rounds > keccak.Rounds {
		return errors.Errorf("rounds must be between 1 and %d, got %d", keccak.Rounds, rounds)
	}
	return nil
}

// readState decodes a hex state from r. Whitespace is ignored and empty input is the all-zero state.
func readState(r io.Reader) (*[keccak.StateSize]byte, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read state")
	}

	s := strings.Join(strings.Fields(string(in)), "")
	if s == "" {
		return new([keccak.StateSize]byte), nil
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "state is not valid hex")
	}
	if len(b) != keccak.StateSize {
		return nil, errors.Errorf("state must be %d bytes, got %d", keccak.StateSize, len(b))
	}
	return keccak.State(b), nil
}

func permute(log *zerolog.Logger, r io.Reader, w io.Writer, rounds int, absorb string) error {
	if err := checkRounds(rounds); err != nil {
		return err
	}

	block, err := hex.DecodeString(absorb)
	if err != nil {
		return errors.Wrap(err, "absorb block is not valid hex")
	}
	if len(block) > keccak.StateSize {
		return errors.Errorf("absorb block must be at most %d bytes, got %d", keccak.StateSize, len(block))
	}

	state, err := readState(r)
	if err != nil {
		return err
	}

	log.Debug().Int("rounds", rounds).Int("absorb", len(block)).Str("implementation", keccak.Implementation()).
		Msg("Permuting state")

	keccak.XORAndPermuteRounds(state, block, rounds)

	if _, err := fmt.Fprintln(w, hex.EncodeToString(state[:])); err != nil {
		return errors.Wrap(err, "failed to write state")
	}
	return nil
}

func writeKAT(log *zerolog.Logger, w io.Writer, rounds, count int) error {
	if err := checkRounds(rounds); err != nil {
		return err
	}
	if count < 1 {
		return errors.Errorf("count must be positive, got %d", count)
	}

	var state [keccak.StateSize]byte
	for i := range count {
		keccak.PermuteRounds(&state, rounds)
		if _, err := fmt.Fprintln(w, hex.EncodeToString(state[:])); err != nil {
			return errors.Wrapf(err, "failed to write vector %d", i+1)
		}
	}

	log.Info().Int("rounds", rounds).Int("count", count).Msg("Wrote known-answer vectors")
	return nil
}
