package nmea

import "strings"

// SentenceType identifies the message id carried in a sentence header
// (the part after the talker id, e.g. "DBS" in "$SDDBS").
type SentenceType int

const (
	Unknown SentenceType = iota
	DBK
	DBS
	DBT
	DPT
	GGA
	GLL
	GSA
	GSV
	HDG
	HDT
	MTW
	MWV
	RMC
	VHW
	VTG
	ZDA
)

var sentenceNames = map[SentenceType]string{
	Unknown: "UNKNOWN",
	DBK:     "DBK",
	DBS:     "DBS",
	DBT:     "DBT",
	DPT:     "DPT",
	GGA:     "GGA",
	GLL:     "GLL",
	GSA:     "GSA",
	GSV:     "GSV",
	HDG:     "HDG",
	HDT:     "HDT",
	MTW:     "MTW",
	MWV:     "MWV",
	RMC:     "RMC",
	VHW:     "VHW",
	VTG:     "VTG",
	ZDA:     "ZDA",
}

var sentenceByName = func() map[string]SentenceType {
	m := make(map[string]SentenceType, len(sentenceNames))
	for t, name := range sentenceNames {
		if t != Unknown {
			m[name] = t
		}
	}
	return m
}()

// String returns the three-letter message id.
func (t SentenceType) String() string {
	if name, ok := sentenceNames[t]; ok {
		return name
	}
	return sentenceNames[Unknown]
}

// ParseSentenceType maps a message id to its SentenceType. Lookup is
// case-insensitive; unknown ids return Unknown and false.
func ParseSentenceType(id string) (SentenceType, bool) {
	t, ok := sentenceByName[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Unknown, false
	}
	return t, true
}
