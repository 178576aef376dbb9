package frame

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/asnimansari/nmea/internal/nmea"
)

// Sentence represents one line of the protocol split into header and
// payload. The checksum digits are carried through as received; they are
// not recomputed here.
type Sentence struct {
	Raw         string
	Start       byte
	TalkerID    string
	Header      string
	MessageID   nmea.SentenceType
	Data        string
	Checksum    byte
	HasChecksum bool
}

// Parse splits a raw line such as "$SDDBS,7.8,f,2.4,M,1.3,F*0D" into its
// talker id, message id and data payload.
func Parse(line string) (Sentence, error) {
	raw := strings.TrimSpace(line)
	if len(raw) == 0 {
		return Sentence{}, fmt.Errorf("empty sentence")
	}
	if raw[0] != '$' && raw[0] != '!' {
		return Sentence{}, fmt.Errorf("sentence must start with '$' or '!', got %q", raw[0])
	}
	s := Sentence{Raw: raw, Start: raw[0]}

	body := raw[1:]
	if star := strings.LastIndexByte(body, '*'); star >= 0 {
		sum, err := parseChecksum(body[star+1:])
		if err != nil {
			return Sentence{}, err
		}
		s.Checksum = sum
		s.HasChecksum = true
		body = body[:star]
	}

	header, data, found := strings.Cut(body, ",")
	if !found {
		return Sentence{}, fmt.Errorf("sentence %q has no data fields", raw)
	}
	talker, id, err := splitHeader(header)
	if err != nil {
		return Sentence{}, err
	}
	s.Header = header
	s.TalkerID = talker
	s.MessageID, _ = nmea.ParseSentenceType(id)
	s.Data = data
	return s, nil
}

// ChecksumString returns the checksum as two upper-case hex digits, or an
// empty string when the sentence carried none.
func (s Sentence) ChecksumString() string {
	if !s.HasChecksum {
		return ""
	}
	return fmt.Sprintf("%02X", s.Checksum)
}

func splitHeader(header string) (string, string, error) {
	if strings.HasPrefix(header, "P") && len(header) >= 2 {
		return "P", header[1:], nil
	}
	if len(header) < 5 {
		return "", "", fmt.Errorf("sentence header %q too short", header)
	}
	return header[:2], header[2:], nil
}

func parseChecksum(digits string) (byte, error) {
	if len(digits) != 2 {
		return 0, fmt.Errorf("checksum must be 2 hex digits, got %q", digits)
	}
	var out [1]byte
	if _, err := hex.Decode(out[:], []byte(digits)); err != nil {
		return 0, fmt.Errorf("decode checksum: %w", err)
	}
	return out[0], nil
}
