package inspect

import (
	"time"

	"github.com/libnmea/libnmea-go/pkg/decode"
)

// MessageDTO is the JSON form of a decoded payload.
type MessageDTO struct {
	PGN         uint32       `json:"pgn"`
	Name        string       `json:"name"`
	Source      uint8        `json:"src"`
	Timestamp   time.Time    `json:"timestamp"`
	Known       bool         `json:"known"`
	Fallback    bool         `json:"fallback,omitempty"`
	Fields      []FieldDTO   `json:"fields"`
	Groups      [][]FieldDTO `json:"groups,omitempty"`
	PaddingBits int          `json:"paddingBits,omitempty"`
	Issues      []string     `json:"issues,omitempty"`
}

// FieldDTO is the JSON form of a decoded field.
type FieldDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Value  any    `json:"value,omitempty"`
	Unit   string `json:"unit,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ToDTO converts a decoded payload into its JSON form.
func ToDTO(msg *decode.Message) MessageDTO {
	dto := MessageDTO{
		PGN:         msg.PGN,
		Name:        msg.Name(),
		Source:      msg.Source,
		Timestamp:   msg.Timestamp,
		Known:       msg.Known(),
		Fallback:    msg.Fallback,
		Fields:      fieldDTOs(msg.Fields),
		PaddingBits: msg.PaddingBits,
	}
	for _, g := range msg.Groups {
		dto.Groups = append(dto.Groups, fieldDTOs(g.Fields))
	}
	for _, issue := range msg.Issues {
		dto.Issues = append(dto.Issues, issue.Error())
	}
	return dto
}

func fieldDTOs(fields []decode.FieldValue) []FieldDTO {
	out := make([]FieldDTO, 0, len(fields))
	for i := range fields {
		fv := &fields[i]
		if fv.Status == decode.StatusNotUsed {
			continue
		}
		fd := FieldDTO{Name: fv.Name(), Status: fv.Status.String()}
		if fv.OK() {
			fd.Value = fv.Value.Interface()
		}
		if u, ok := fv.Unit().Get(); ok {
			fd.Unit = u.Symbol()
		}
		if fv.Err != nil {
			fd.Error = fv.Err.Error()
		}
		out = append(out, fd)
	}
	return out
}
