package main

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/jsonio/internal/profile"
	"github.com/rawbytedev/jsonio/pkg/compactwire"
	"github.com/rawbytedev/jsonio/pkg/scan"
)

func run(cfg Config, log *logrus.Logger) error {
	in, err := readInput(cfg.In)
	if err != nil {
		log.WithError(err).Error("read input")
		return err
	}
	out, err := convert(cfg, in, log)
	if out != nil {
		if werr := writeOutput(cfg.Out, out); werr != nil {
			log.WithError(werr).Error("write output")
			return werr
		}
	}
	return err
}

// convert turns one input document into the bytes to emit. A rejected
// document still yields output when framing is on: an error frame.
func convert(cfg Config, in []byte, log *logrus.Logger) ([]byte, error) {
	if cfg.Frame {
		if t, err := compactwire.FrameType(in); err == nil && t == compactwire.TypeData {
			doc, err := compactwire.DecodeDataFrame(in)
			if err != nil {
				log.WithError(err).Error("unframe input")
				return nil, err
			}
			in = doc
		}
	}

	p, err := profile.Decode(in)
	if err != nil {
		fields := logrus.Fields{"kind": scan.KindOf(err).String()}
		var se *scan.SyntaxError
		if errors.As(err, &se) {
			fields["offset"] = se.Offset
		}
		log.WithFields(fields).WithError(err).Error("decode profile")
		if cfg.Frame {
			return errorFrame(err), err
		}
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"id":    p.ID.String(),
		"name":  p.Name,
		"mode":  p.Mode.String(),
		"peers": len(p.Peers),
	}).Info("decoded profile")

	doc, err := p.Encode()
	if err != nil {
		log.WithError(err).Error("encode profile")
		return nil, err
	}
	doc = append(doc, '\n')
	if !cfg.Frame {
		return doc, nil
	}
	frame, err := compactwire.EncodeDataFrame(doc, cfg.Compress)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"doc": len(doc), "frame": len(frame)}).Debug("framed")
	return frame, nil
}

func errorFrame(err error) []byte {
	f := compactwire.ErrorFrame{
		Code:    byte(scan.KindOf(err)),
		Message: []byte(err.Error()),
	}
	var se *scan.SyntaxError
	if errors.As(err, &se) {
		f.Offset = uint32(se.Offset)
	}
	return compactwire.EncodeErrorFrame(f)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
