package api

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMalformedMessage = errors.New("malformed message")

// Session is the Login response payload.
type Session struct {
	Account string
	Token   string
}

// Announcement is one element of the FetchAnnouncements response.
type Announcement struct {
	UserID int
	ID     int
	Title  string
	Body   string
}

func SessionToStruct(s Session) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"account": structpb.NewStringValue(s.Account),
		"token":   structpb.NewStringValue(s.Token),
	}}
}

func SessionFromStruct(st *structpb.Struct) (Session, error) {
	account, err := stringField(st, "account")
	if err != nil {
		return Session{}, err
	}
	token, err := stringField(st, "token")
	if err != nil {
		return Session{}, err
	}
	return Session{Account: account, Token: token}, nil
}

func AnnouncementsToList(items []Announcement) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(items))
	for _, a := range items {
		values = append(values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"userId": structpb.NewNumberValue(float64(a.UserID)),
			"id":     structpb.NewNumberValue(float64(a.ID)),
			"title":  structpb.NewStringValue(a.Title),
			"body":   structpb.NewStringValue(a.Body),
		}}))
	}
	return &structpb.ListValue{Values: values}
}

func AnnouncementsFromList(list *structpb.ListValue) ([]Announcement, error) {
	out := make([]Announcement, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		st := v.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("announcement %d: %w", i, ErrMalformedMessage)
		}

		userID, err := intField(st, "userId")
		if err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}
		id, err := intField(st, "id")
		if err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}
		title, err := stringField(st, "title")
		if err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}
		body, err := stringField(st, "body")
		if err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}

		out = append(out, Announcement{UserID: userID, ID: id, Title: title, Body: body})
	}
	return out, nil
}

func stringField(st *structpb.Struct, name string) (string, error) {
	v, ok := st.GetFields()[name]
	if !ok {
		return "", fmt.Errorf("field %q missing: %w", name, ErrMalformedMessage)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("field %q is not a string: %w", name, ErrMalformedMessage)
	}
	return s.StringValue, nil
}

func intField(st *structpb.Struct, name string) (int, error) {
	v, ok := st.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("field %q missing: %w", name, ErrMalformedMessage)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number: %w", name, ErrMalformedMessage)
	}
	return int(n.NumberValue), nil
}
