package kafka

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ReportRequest asks the reporter to render a report and deliver it to a chat.
type ReportRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	ChatID    int64     `json:"chat_id"`
	Kind      string    `json:"kind"`
}

func encodeRequest(req ReportRequest) ([]byte, error) {
	raw, err := json.Marshal(req)
	return raw, errors.Wrap(err, "marshal report request")
}

func decodeRequest(raw []byte) (ReportRequest, error) {
	var req ReportRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return ReportRequest{}, errors.Wrap(err, "unmarshal report request")
	}
	if req.Kind == "" {
		return ReportRequest{}, errors.New("report request without kind")
	}
	return req, nil
}
