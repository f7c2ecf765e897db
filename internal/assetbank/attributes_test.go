package assetbank

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestClient_GetAttributes(t *testing.T) {
	mux := http.NewServeMux()
	client, server := newTestClient(t, mux)

	mux.HandleFunc("/rest/attributes", func(w http.ResponseWriter, r *http.Request) {
		// Out of id order on purpose: the result must be sorted.
		fmt.Fprintf(w, `["%s/rest/attributes/5","%s/rest/attributes/2"]`, server.URL, server.URL)
	})
	mux.HandleFunc("/rest/attributes/5", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"id": 5, "label": "Orientation", "typeId": 6,
			"listValuesUrl": "%s/rest/attributes/5/list-values"
		}`, server.URL)
	})
	mux.HandleFunc("/rest/attributes/5/list-values", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"value":"1"},{"value":"2"},{"value":"3"}]`))
	})
	mux.HandleFunc("/rest/attributes/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 2, "label": "Title", "typeId": 1}`))
	})

	attributes, err := client.GetAttributes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(attributes) != 2 {
		t.Fatalf("got %d attributes, want 2: %+v", len(attributes), attributes)
	}

	title := attributes[0]
	if title.ID != 2 || title.Label != "Title" || title.TypeID != TypeText {
		t.Errorf("unexpected first attribute: %+v", title)
	}
	if title.ListValues == nil || len(title.ListValues) != 0 {
		t.Errorf("expected empty list values, got %+v", title.ListValues)
	}

	orientation := attributes[1]
	if orientation.ID != 5 {
		t.Fatalf("unexpected second attribute: %+v", orientation)
	}
	wantValues := []ListValue{
		{Value: "1", Label: "Landscape"},
		{Value: "2", Label: "Portrait"},
		{Value: "3", Label: "Square"},
	}
	if len(orientation.ListValues) != len(wantValues) {
		t.Fatalf("got %d list values, want %d", len(orientation.ListValues), len(wantValues))
	}
	for i, w := range wantValues {
		if orientation.ListValues[i] != w {
			t.Errorf("listValues[%d] = %+v, want %+v", i, orientation.ListValues[i], w)
		}
	}
}

func TestClient_GetAttributes_ResolutionFailurePropagates(t *testing.T) {
	mux := http.NewServeMux()
	client, server := newTestClient(t, mux)

	mux.HandleFunc("/rest/attributes", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `["%s/rest/attributes/1"]`, server.URL)
	})
	mux.HandleFunc("/rest/attributes/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.GetAttributes(context.Background()); err == nil {
		t.Fatal("expected error from failed attribute resolution")
	}
}

func TestOperatorsFor(t *testing.T) {
	tests := []struct {
		typeID     int
		filterable bool
		selectable bool
		operator   string
	}{
		{TypeText, true, false, "match"},
		{TypeTextArea, true, false, "match"},
		{TypeDropdown, true, true, "eq"},
		{TypeChecklist, true, true, "eq"},
		{TypeOptionlist, true, true, "eq"},
		{TypeTextFieldShort, true, false, "match"},
		{TypeSystem, false, false, ""},
		{TypeDatepicker, false, false, ""},
	}

	for _, tt := range tests {
		if got := Filterable(tt.typeID); got != tt.filterable {
			t.Errorf("Filterable(%d) = %v, want %v", tt.typeID, got, tt.filterable)
		}
		if got := Selectable(tt.typeID); got != tt.selectable {
			t.Errorf("Selectable(%d) = %v, want %v", tt.typeID, got, tt.selectable)
		}

		operators := OperatorsFor(tt.typeID)
		if tt.operator == "" {
			if operators != nil {
				t.Errorf("OperatorsFor(%d) = %+v, want nil", tt.typeID, operators)
			}
			continue
		}
		if len(operators) != 1 || operators[0].Value != tt.operator {
			t.Errorf("OperatorsFor(%d) = %+v, want one %q operator", tt.typeID, operators, tt.operator)
		}
	}
}
