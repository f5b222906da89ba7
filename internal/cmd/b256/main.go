package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/factset/go-base256"
	"github.com/factset/go-base256/internal/log"
)

const usage = `Base256 vector calculator.

Usage:
	b256 -h | --help
	b256 add [-v] [--in ENC] [--out ENC] A B
	b256 mul [-v] [--in ENC] [--out ENC] A N
	b256 xor [-v] [--in ENC] [--out ENC] A B

Arguments:
	A B  vector operands, written in the input encoding
	N    non-negative integer scalar

Options:
	-h --help      Show this screen.
	-v --verbose   Enable debug logging.
	--in ENC       input encoding: hex, base58 or json [default: hex]
	--out ENC      output encoding: hex, base58 or json [default: hex]`

type config struct {
	Add     bool
	Mul     bool
	Xor     bool
	Verbose bool   `docopt:"--verbose"`
	In      string `docopt:"--in"`
	Out     string `docopt:"--out"`
	A       string `docopt:"A"`
	B       string `docopt:"B"`
	N       string `docopt:"N"`
}

func decode(enc, s string) (base256.Vector, error) {
	switch enc {
	case "hex":
		raw, err := hex.DecodeString(s)
		if err != nil {
			return base256.Vector{}, errors.Wrap(err, "decoding hex operand")
		}
		return base256.New(raw), nil
	case "base58":
		var v base256.Vector
		if err := v.UnmarshalText([]byte(s)); err != nil {
			return base256.Vector{}, err
		}
		return v, nil
	case "json":
		var v base256.Vector
		if err := v.UnmarshalJSON([]byte(s)); err != nil {
			return base256.Vector{}, err
		}
		return v, nil
	default:
		return base256.Vector{}, errors.Errorf("unknown encoding '%s'", enc)
	}
}

func encode(enc string, v base256.Vector) (string, error) {
	switch enc {
	case "hex":
		return hex.EncodeToString(v.Bytes()), nil
	case "base58":
		out, err := v.MarshalText()
		return string(out), err
	case "json":
		out, err := v.MarshalJSON()
		return string(out), err
	default:
		return "", errors.Errorf("unknown encoding '%s'", enc)
	}
}

func run(cfg config) (string, error) {
	a, err := decode(cfg.In, cfg.A)
	if err != nil {
		return "", err
	}

	var res base256.Vector
	switch {
	case cfg.Add, cfg.Xor:
		b, err := decode(cfg.In, cfg.B)
		if err != nil {
			return "", err
		}
		log.Logger.Debug().Stringer("a", a).Stringer("b", b).Msg("decoded operands")
		if cfg.Add {
			res, err = a.Add(b)
			if err != nil {
				return "", err
			}
		} else {
			res = a.Xor(b)
		}
	case cfg.Mul:
		n, err := strconv.Atoi(cfg.N)
		if err != nil {
			return "", errors.Wrap(err, "parsing scalar")
		}
		log.Logger.Debug().Stringer("a", a).Int("n", n).Msg("decoded operands")
		res, err = a.Multiply(n)
		if err != nil {
			return "", err
		}
	}

	return encode(cfg.Out, res)
}

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		panic(err)
	}

	var cfg config
	opts.Bind(&cfg)

	if cfg.Verbose {
		log.SetLevel(zerolog.DebugLevel)
	}

	out, err := run(cfg)
	if err != nil {
		log.Logger.Error().Err(err).Msg("operation failed")
		os.Exit(1)
	}
	fmt.Println(out)
}
