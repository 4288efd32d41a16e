package autoapi

import (
	"bytes"
	"encoding/json"

	"vehicle_sync/internal/domain"
)

// FlexString decodes identifiers that upstreams send either as JSON strings
// or as numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Offer is one entry of /offers or /changes. Data is nil for removals.
type Offer struct {
	ID         FlexString        `json:"id"`
	InnerID    FlexString        `json:"inner_id"`
	ChangeType domain.ChangeType `json:"change_type"`
	CreatedAt  string            `json:"created_at"`
	Data       json.RawMessage   `json:"data"`
}

type OffersMeta struct {
	Page     int  `json:"page"`
	NextPage *int `json:"next_page"`
	Limit    int  `json:"limit"`
}

type OffersResponse struct {
	Result []Offer     `json:"result"`
	Meta   *OffersMeta `json:"meta"`
}

type ChangesMeta struct {
	CurChangeID  FlexString `json:"cur_change_id"`
	NextChangeID FlexString `json:"next_change_id"`
	Limit        int        `json:"limit"`
}

type ChangesResponse struct {
	Result []Offer       `json:"result"`
	Meta   *ChangesMeta `json:"meta"`
}

type ChangeIDResponse struct {
	ChangeID FlexString `json:"change_id"`
}

func toRawOffers(offers []Offer) []domain.RawOffer {
	raw := make([]domain.RawOffer, 0, len(offers))
	for _, o := range offers {
		changeType := o.ChangeType
		if changeType == "" {
			changeType = domain.ChangeAdded
		}
		var payload json.RawMessage
		if len(o.Data) > 0 && !bytes.Equal(bytes.TrimSpace(o.Data), []byte("null")) {
			payload = o.Data
		}
		raw = append(raw, domain.RawOffer{
			InnerID:    o.InnerID.String(),
			ChangeType: changeType,
			Payload:    payload,
		})
	}
	return raw
}
