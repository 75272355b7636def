package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"signal-webhook/models"
)

// ParsedSignal is a validated webhook payload whose time has not yet been
// normalized.
type ParsedSignal struct {
	Symbol    string
	Event     string
	BuyPrice  *float64
	SellPrice *float64
	RawTime   json.RawMessage
}

// Signal builds the storable record for the given display time.
func (p ParsedSignal) Signal(displayTime string) models.Signal {
	return models.Signal{
		Symbol:      p.Symbol,
		Event:       p.Event,
		BuyPrice:    p.BuyPrice,
		SellPrice:   p.SellPrice,
		DisplayTime: displayTime,
	}
}

type webhookPayload struct {
	Symbol string          `json:"symbol" validate:"required"`
	Event  string          `json:"event" validate:"required,oneof=buy sell"`
	Price  *flexFloat      `json:"price" validate:"required,gt=0"`
	Time   json.RawMessage `json:"time"`
}

// flexFloat accepts a JSON number or a string holding one.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var v float64
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("price %q is not a number", s)
		}
		v = parsed
	} else if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("price %s is not a number", string(b))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("price %s is not finite", string(b))
	}
	*f = flexFloat(v)
	return nil
}

type Parser struct {
	validate *validator.Validate
}

func NewParser() *Parser {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Parser{validate: v}
}

// Parse decodes and validates a webhook body. All failures wrap
// ErrMalformedPayload.
func (p *Parser) Parse(body []byte) (ParsedSignal, error) {
	req, err := decodePayload(body)
	if err != nil {
		return ParsedSignal{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	req.Event = strings.ToLower(req.Event)
	if err := p.validate.Struct(&req); err != nil {
		return ParsedSignal{}, fmt.Errorf("%w: %s", ErrMalformedPayload, validationMessage(err))
	}
	if len(req.Time) == 0 || string(req.Time) == "null" {
		return ParsedSignal{}, fmt.Errorf("%w: time is required", ErrMalformedPayload)
	}

	price := float64(*req.Price)
	parsed := ParsedSignal{
		Symbol:  req.Symbol,
		Event:   req.Event,
		RawTime: req.Time,
	}
	switch req.Event {
	case models.EventBuy:
		parsed.BuyPrice = &price
	case models.EventSell:
		parsed.SellPrice = &price
	}
	return parsed, nil
}

var payloadKeys = map[string]bool{"symbol": true, "event": true, "price": true, "time": true}

// decodePayload reads only keys that match the field names exactly.
// encoding/json would otherwise bind "SYMBOL" or "Price" case-insensitively.
func decodePayload(body []byte) (webhookPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return webhookPayload{}, err
	}
	for key := range fields {
		if !payloadKeys[key] {
			delete(fields, key)
		}
	}
	exact, err := json.Marshal(fields)
	if err != nil {
		return webhookPayload{}, err
	}

	var req webhookPayload
	if err := json.Unmarshal(exact, &req); err != nil {
		return webhookPayload{}, err
	}
	return req, nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
