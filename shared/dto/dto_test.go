package dto_test

import (
	"net/http"
	"net/http/httptest"
	"roomescape/shared/constant"
	"roomescape/shared/dto"
	"roomescape/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt to be %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.ModifiedAt != modifiedAt.Format(constant.DateFormat) {
		t.Errorf("expected ModifiedAt to be %s, got %s", modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with all valid parameters",
			query:          "page=2&limit=20&sort_by=name&sort_dir=ASC",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults applied when missing",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "defaults disabled leaves zero values",
			query:          "",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid page falls back to default",
			query:          "page=invalid",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "negative limit falls back to default",
			query:          "limit=-10",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "sort dir is normalized to upper case",
			query:          "sort_dir=desc",
			defaultRequest: false,
			expected:       dto.QueryParams{SortDir: "DESC"},
		},
		{
			name:           "unknown sort dir is dropped",
			query:          "sort_dir=sideways",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reservations?"+tt.query, nil)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "date",
				Operator: dto.FilterOperatorEq,
				Value:    "2026-01-02",
				Table:    "reservation",
			},
			wantWhere: "reservation.date = :date",
			wantArgs:  map[string]any{"date": "2026-01-02"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "start_at",
				Operator: dto.FilterOperatorEq,
				Value:    "10:00",
			},
			wantWhere: "start_at = :start_at",
			wantArgs:  map[string]any{"start_at": "10:00"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "time_ref",
				Field:    "time_id",
				Operator: dto.FilterOperatorEq,
				Value:    int64(3),
				Table:    "reservation",
			},
			wantWhere: "reservation.time_id = :time_ref",
			wantArgs:  map[string]any{"time_ref": int64(3)},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "name",
				Operator: "between",
				Value:    "x",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if got := args[key]; got != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "date", Operator: dto.FilterOperatorEq, Value: "2026-01-02", Table: "reservation"},
			dto.Filter{Field: "time_id", Operator: dto.FilterOperatorEq, Value: int64(1), Table: "reservation"},
			dto.Filter{Field: "theme_id", Operator: dto.FilterOperatorEq, Value: int64(2), Table: "reservation"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(reservation.date = :date AND reservation.time_id = :time_id AND reservation.theme_id = :theme_id)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
