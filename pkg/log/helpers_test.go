package log

import (
	"time"
)

func sampleEvent(category Category) Event {
	return Event{
		Timestamp:   time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		SessionID:   "5f0c7e2a-3b1d-4c8e-9a6f-2d4b8c1e7f30",
		Category:    category,
		Source:      35,
		Fingerprint: "9c1e",
		Message: &MessageEvent{
			PGN:   127250,
			Name:  "Vessel Heading",
			Known: true,
			Data:  []byte{0x01, 0x10, 0x27, 0xFF, 0x7F, 0xFF, 0x7F, 0xFD},
			Fields: []FieldEvent{
				{Name: "SID", Status: "OK", Value: uint64(1)},
				{Name: "Heading", Status: "OK", Value: 1.0, Unit: "rad"},
				{Name: "Deviation", Status: "UNAVAILABLE", Unit: "rad"},
			},
		},
	}
}
