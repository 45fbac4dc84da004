package binarycodec

import (
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

const (
	pathStepAccount  = 0x01
	pathStepCurrency = 0x10
	pathStepIssuer   = 0x20

	pathSeparator = 0xFF
	pathSetEnd    = 0x00
)

// PathStep is one hop in a payment path: some combination of an account to
// route through, a currency to convert to, and/or an issuer to route
// through, each optional and independently flagged on the wire.
type PathStep struct {
	Account  string
	Currency string
	Issuer   string
}

// Path is an ordered list of hops a payment may route through.
type Path []PathStep

// PathSet is the set of alternative Paths a Payment transaction offers the
// network to choose from.
type PathSet []Path

func serializePathSet(ps PathSet) ([]byte, error) {
	if len(ps) == 0 {
		return nil, xrplerr.ErrEmptyPathSet
	}

	var out []byte
	for i, path := range ps {
		if len(path) == 0 {
			return nil, xrplerr.ErrEmptyPath
		}
		for _, step := range path {
			stepBytes, typeByte, err := serializePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, typeByte)
			out = append(out, stepBytes...)
		}
		if i < len(ps)-1 {
			out = append(out, pathSeparator)
		}
	}
	out = append(out, pathSetEnd)
	return out, nil
}

func serializePathStep(step PathStep) (stepBytes []byte, typeByte byte, err error) {
	if step.Account != "" {
		raw, err := decodeClassicAddressRaw(step.Account)
		if err != nil {
			return nil, 0, err
		}
		typeByte |= pathStepAccount
		stepBytes = append(stepBytes, raw...)
	}
	if step.Currency != "" {
		raw, err := encodeCurrency(step.Currency)
		if err != nil {
			return nil, 0, err
		}
		typeByte |= pathStepCurrency
		stepBytes = append(stepBytes, raw...)
	}
	if step.Issuer != "" {
		raw, err := decodeClassicAddressRaw(step.Issuer)
		if err != nil {
			return nil, 0, err
		}
		typeByte |= pathStepIssuer
		stepBytes = append(stepBytes, raw...)
	}
	return stepBytes, typeByte, nil
}

func deserializePathSet(s *Scanner) (PathSet, error) {
	var ps PathSet
	var current Path

	for {
		b, err := s.Take1()
		if err != nil {
			return nil, err
		}

		switch b {
		case pathSetEnd:
			if len(current) > 0 {
				ps = append(ps, current)
			}
			if len(ps) == 0 {
				return nil, xrplerr.ErrEmptyPathSet
			}
			return ps, nil
		case pathSeparator:
			if len(current) == 0 {
				return nil, xrplerr.ErrEmptyPath
			}
			ps = append(ps, current)
			current = nil
		default:
			step, err := deserializePathStep(s, b)
			if err != nil {
				return nil, err
			}
			current = append(current, step)
		}
	}
}

func deserializePathStep(s *Scanner, typeByte byte) (PathStep, error) {
	var step PathStep

	if typeByte&pathStepAccount != 0 {
		raw, err := s.Take(20)
		if err != nil {
			return step, err
		}
		addr, err := encodeClassicAddressRaw(raw)
		if err != nil {
			return step, err
		}
		step.Account = addr
	}
	if typeByte&pathStepCurrency != 0 {
		raw, err := s.Take(20)
		if err != nil {
			return step, err
		}
		cur, err := decodeCurrency(raw)
		if err != nil {
			return step, err
		}
		step.Currency = cur
	}
	if typeByte&pathStepIssuer != 0 {
		raw, err := s.Take(20)
		if err != nil {
			return step, err
		}
		addr, err := encodeClassicAddressRaw(raw)
		if err != nil {
			return step, err
		}
		step.Issuer = addr
	}
	return step, nil
}
