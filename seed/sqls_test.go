package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SplitSqls(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{{
		name:  "empty",
		input: "",
		want:  []string{},
	}, {
		name:  "comments_and_blank_only",
		input: "# header\n\n-- note\n   \n#\n--\n",
		want:  []string{},
	}, {
		name:  "one_statement_per_line",
		input: "SELECT 1;\nSELECT 2;\nSELECT 3;\n",
		want:  []string{"SELECT 1;", "SELECT 2;", "SELECT 3;"},
	}, {
		name:  "multi_line_joined_by_space",
		input: "CREATE TABLE t (\n  id INT,\n  name VARCHAR(50)\n);",
		want:  []string{"CREATE TABLE t ( id INT, name VARCHAR(50) );"},
	}, {
		name:  "trailing_without_semicolon",
		input: "SELECT 1;\nINSERT INTO t VALUES (1)",
		want:  []string{"SELECT 1;", "INSERT INTO t VALUES (1)"},
	}, {
		name:  "comment_inside_statement_dropped",
		input: "INSERT INTO t\n-- between the tokens\nVALUES (1);",
		want:  []string{"INSERT INTO t VALUES (1);"},
	}, {
		name:  "hash_comment_dropped",
		input: "# bootstrap\nUSE demo;\n",
		want:  []string{"USE demo;"},
	}, {
		name:  "crlf_and_indent",
		input: "  SELECT 1;\r\n\tSELECT 2;\r\n",
		want:  []string{"SELECT 1;", "SELECT 2;"},
	}, {
		// line-oriented by design: a literal spanning lines gets cut at
		// the `;` line end, quotes or not
		name:  "semicolon_in_literal_mis_split",
		input: "SELECT 'a;\nb';",
		want:  []string{"SELECT 'a;", "b';"},
	}, {
		name:  "spec_scenario",
		input: "CREATE TABLE t (id INT);\n-- comment\nINSERT INTO t VALUES (1);\nINSERT INTO t VALUES (2)",
		want: []string{
			"CREATE TABLE t (id INT);",
			"INSERT INTO t VALUES (1);",
			"INSERT INTO t VALUES (2)",
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSqls(pref, makeFileEntity(tt.input))
			assert.Equal(t, tt.want, sqlTexts(got))
		})
	}
}

func Test_SplitSqls_HeadLines(t *testing.T) {
	file := makeFileEntity("-- ddl\nCREATE TABLE t (\n  id INT\n);\n\nINSERT INTO t VALUES (1)")
	sqls := SplitSqls(pref, file)

	require.Len(t, sqls, 2)
	assert.Equal(t, 2, sqls[0].Head)
	assert.Equal(t, 6, sqls[1].Head)
	assert.Equal(t, "test.sql", sqls[0].File)
}

func Test_SplitSqls_Restartable(t *testing.T) {
	file := makeFileEntity("USE demo;\nINSERT INTO t\nVALUES (1);\nSELECT 1")

	one := SplitSqls(pref, file)
	two := SplitSqls(pref, file)
	assert.Equal(t, one, two)
}
