package contract

import (
	"context"
	"testing"
)

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Paths == nil || doc.Paths.Len() != 2 {
		t.Fatalf("want 2 paths, got %v", doc.Paths)
	}
	for _, name := range []string{"Session", "Control", "ResponseData", "FileValue", "Simulate"} {
		if _, err := Schema(context.Background(), name); err != nil {
			t.Fatalf("Schema(%s): %v", name, err)
		}
	}
}

func TestSchemaUnknown(t *testing.T) {
	if _, err := Schema(context.Background(), "Telegram"); err == nil {
		t.Fatal("unknown schema name must fail")
	}
}

func TestValidatePayload(t *testing.T) {
	cases := []struct {
		name    string
		schema  string
		payload string
		wantErr bool
	}{
		{
			name:    "valid file value",
			schema:  "FileValue",
			payload: `{"type": "file", "value": ["data:id=123;base64,receipt.pdf"]}`,
		},
		{
			name:    "file value without prefix",
			schema:  "FileValue",
			payload: `{"type": "file", "value": ["receipt.pdf"]}`,
			wantErr: true,
		},
		{
			name:    "file value wrong tag",
			schema:  "FileValue",
			payload: `{"type": "upload", "value": ["data:id=123;base64,receipt.pdf"]}`,
			wantErr: true,
		},
		{
			name:    "valid response data",
			schema:  "ResponseData",
			payload: `{"name": "Ada", "married": null, "@parent": "global"}`,
		},
		{
			name:    "valid simulate",
			schema:  "Simulate",
			payload: `{"mode": "api", "save": false, "goal": "eligibility", "data": {}}`,
		},
		{
			name:    "simulate with save",
			schema:  "Simulate",
			payload: `{"mode": "api", "save": true, "goal": "eligibility", "data": {}}`,
			wantErr: true,
		},
		{
			name:    "simulate wrong mode",
			schema:  "Simulate",
			payload: `{"mode": "ui", "save": false, "goal": "eligibility", "data": {}}`,
			wantErr: true,
		},
		{
			name:    "progress out of range",
			schema:  "Progress",
			payload: `{"time": 10, "percentage": 130}`,
			wantErr: true,
		},
		{
			name:    "control with unknown kind",
			schema:  "Control",
			payload: `{"id": "c1", "type": "hologram"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			schema:  "Simulate",
			payload: `{`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayload(context.Background(), tc.schema, []byte(tc.payload))
			if tc.wantErr && err == nil {
				t.Fatal("want error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
