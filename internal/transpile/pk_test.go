package transpile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrimaryKeyColumns(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      []string
	}{
		{
			name: "inline marker on a single column",
			statement: `CREATE TABLE APP.ACCOUNT (
  ACCOUNT_ID INTEGER NOT NULL CONSTRAINT PK_ACC PRIMARY KEY,
  NAME VARCHAR(100)
);`,
			want: []string{"ACCOUNT_ID"},
		},
		{
			name: "table-level clause with multiple columns",
			statement: `CREATE TABLE APP.ORDER_LINE (
  ORDER_ID INTEGER NOT NULL,
  LINE_NO SMALLINT NOT NULL,
  PRIMARY KEY (ORDER_ID, LINE_NO)
);`,
			want: []string{"ORDER_ID", "LINE_NO"},
		},
		{
			name: "inline marker wins when both forms appear",
			statement: `CREATE TABLE APP.MIXED (
  ID INTEGER NOT NULL PRIMARY KEY,
  ALT INTEGER NOT NULL,
  PRIMARY KEY (ALT)
);`,
			want: []string{"ID"},
		},
		{
			name: "no primary key declared",
			statement: `CREATE TABLE APP.LOG (
  MSG VARCHAR(200)
);`,
			want: nil,
		},
		{
			name:      "inline marker on a one-line statement",
			statement: `CREATE TABLE APP.ACCOUNT (ACCOUNT_ID INTEGER NOT NULL CONSTRAINT PK_ACC PRIMARY KEY, BAL DECIMAL(18,2));`,
			want:      []string{"ACCOUNT_ID"},
		},
		{
			name: "named table-level constraint",
			statement: `CREATE TABLE APP.PAIR (
  A INTEGER NOT NULL,
  B INTEGER NOT NULL,
  CONSTRAINT PK_PAIR PRIMARY KEY (A, B)
);`,
			want: []string{"A", "B"},
		},
		{
			name: "table-level clause spanning lines",
			statement: `CREATE TABLE APP.WIDE (
  A INTEGER NOT NULL,
  B INTEGER NOT NULL,
  PRIMARY KEY (A,
    B)
);`,
			want: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimaryKeyColumns(tt.statement)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PrimaryKeyColumns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddPrimaryKeyStatement(t *testing.T) {
	got := AddPrimaryKeyStatement("APP.ACCOUNT", []string{"ACCOUNT_ID"})
	want := "ALTER TABLE APP.ACCOUNT ADD PRIMARY KEY (ACCOUNT_ID);"
	if got != want {
		t.Errorf("AddPrimaryKeyStatement() = %q, want %q", got, want)
	}

	got = AddPrimaryKeyStatement("APP.ORDER_LINE", []string{"ORDER_ID", "LINE_NO"})
	want = "ALTER TABLE APP.ORDER_LINE ADD PRIMARY KEY (ORDER_ID, LINE_NO);"
	if got != want {
		t.Errorf("AddPrimaryKeyStatement() = %q, want %q", got, want)
	}
}
