package decode

import (
	"github.com/libnmea/libnmea-go/pkg/log"
)

// event converts a decoded message into a protocol log event.
func (d *Decoder) event(msg *Message) log.Event {
	category := log.CategoryDecode
	switch {
	case msg.Fallback:
		category = log.CategoryFallback
	case len(msg.Issues) > 0:
		category = log.CategoryIssue
	}

	me := &log.MessageEvent{
		PGN:         msg.PGN,
		Name:        msg.Name(),
		Known:       msg.Known(),
		Data:        msg.Data,
		Groups:      len(msg.Groups),
		PaddingBits: msg.PaddingBits,
	}
	for fv := range msg.Each {
		fe := log.FieldEvent{
			Name:   fv.Name(),
			Status: fv.Status.String(),
			Group:  fv.Group,
		}
		if fv.OK() {
			fe.Value = fv.Value.Interface()
		}
		if fv.Status == StatusError && fv.Err != nil {
			fe.Error = fv.Err.Error()
		}
		if u, ok := fv.Unit().Get(); ok {
			fe.Unit = u.Symbol()
		}
		me.Fields = append(me.Fields, fe)
	}
	for _, issue := range msg.Issues {
		me.Issues = append(me.Issues, issue.Error())
	}

	return log.Event{
		Timestamp:   msg.Timestamp,
		SessionID:   d.sessionID,
		Category:    category,
		Source:      msg.Source,
		Fingerprint: d.reg.Fingerprint(),
		Message:     me,
	}
}
