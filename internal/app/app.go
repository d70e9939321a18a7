// Package app wires the normalizer to the lookup engine.
package app

import (
	"github.com/rs/zerolog"

	"github.com/jaco/ouilookup/internal/config"
	"github.com/jaco/ouilookup/internal/mac"
	"github.com/jaco/ouilookup/internal/vendor"
)

// NoMatch is printed when no source knows the OUI.
const NoMatch = "No match."

// Source names where a vendor came from.
type Source string

const (
	SourceTable   Source = "table"
	SourceBuiltin Source = "builtin"
)

// Outcome is the result of a successful lookup, matched or not.
type Outcome struct {
	OUI    string
	Vendor string
	Found  bool
	Source Source
}

// String is the line printed for the outcome.
func (o Outcome) String() string {
	if !o.Found {
		return NoMatch
	}
	return o.Vendor
}

// Service runs raw MAC strings through normalization and lookup.
type Service struct {
	Table           vendor.Table
	StrictHex       bool
	BuiltinFallback bool
	Log             zerolog.Logger
}

// New builds a Service from configuration. tableOverride replaces the
// configured table path when non-empty.
func New(cfg *config.Config, tableOverride string, log zerolog.Logger) (*Service, error) {
	table, err := cfg.VendorTable(tableOverride)
	if err != nil {
		return nil, err
	}
	return &Service{
		Table:           table,
		StrictHex:       cfg.Lookup.StrictHex,
		BuiltinFallback: cfg.Lookup.BuiltinFallback,
		Log:             log,
	}, nil
}

// Lookup stops at the first failing stage. Not finding the OUI is a
// successful outcome with Found false.
func (s *Service) Lookup(raw string) (Outcome, error) {
	oui, err := mac.Normalize(raw)
	if err != nil {
		return Outcome{}, err
	}
	if s.StrictHex {
		if err := mac.ValidateHex(oui); err != nil {
			return Outcome{}, err
		}
	}

	s.Log.Debug().
		Str("oui", oui).
		Str("table", s.Table.Path).
		Str("format", string(s.Table.Format)).
		Msg("searching reference table")

	res, err := s.Table.Lookup(oui)
	if err != nil {
		return Outcome{}, err
	}
	if res.Found {
		return Outcome{OUI: oui, Vendor: res.Vendor, Found: true, Source: SourceTable}, nil
	}

	if s.BuiltinFallback {
		if name, ok := vendor.Builtin(oui); ok {
			s.Log.Debug().Str("oui", oui).Msg("matched builtin registry")
			return Outcome{OUI: oui, Vendor: name, Found: true, Source: SourceBuiltin}, nil
		}
	}

	s.Log.Debug().Str("oui", oui).Msg("no match")
	return Outcome{OUI: oui}, nil
}
