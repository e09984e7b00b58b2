package jvm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `{
  "name": "com/example/Server",
  "super": "java/lang/Object",
  "methods": [
    {
      "name": "start",
      "descriptor": "()V",
      "throws": ["java/io/IOException"],
      "code": {
        "max_locals": 2,
        "instructions": [
          {"pc": 0, "op": "new", "type": "java/lang/Exception"},
          {"pc": 3, "op": "dup"},
          {"pc": 4, "op": "invokespecial", "owner": "java/lang/Exception", "name": "<init>", "descriptor": "()V"},
          {"pc": 7, "op": "athrow"},
          {"pc": 8, "op": "astore", "var": 1},
          {"pc": 9, "op": "return"}
        ],
        "exception_table": [
          {"start_pc": 0, "end_pc": 8, "handler_pc": 8, "catch_type": 4, "catch_type_name": "java/lang/Exception"}
        ]
      }
    },
    {
      "name": "stop",
      "descriptor": "()V"
    }
  ]
}`

func TestParseClass(t *testing.T) {
	cls, err := ParseClass(strings.NewReader(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "com.example.Server", cls.Name)
	assert.Equal(t, "java.lang.Object", cls.SuperName)
	require.Len(t, cls.Methods, 2)

	start := cls.Method("start", "()V")
	require.NotNil(t, start)
	assert.Equal(t, []string{"java.io.IOException"}, start.Exceptions)
	require.NotNil(t, start.Code)
	assert.Equal(t, 2, start.Code.MaxLocals)
	require.Len(t, start.Code.Instructions, 6)
	assert.Equal(t, New, start.Code.Instructions[0].Op)
	assert.Equal(t, "java.lang.Exception", start.Code.Instructions[0].TypeName)
	assert.Equal(t, "java.lang.Exception", start.Code.Instructions[2].ClassName)

	require.Len(t, start.Code.ExceptionTable, 1)
	entry := start.Code.ExceptionTable[0]
	assert.Equal(t, "java.lang.Exception", entry.CatchTypeName)
	assert.False(t, entry.IsCatchAll())

	// abstract method has no code
	stop := cls.Method("stop", "()V")
	require.NotNil(t, stop)
	assert.Nil(t, stop.Code)
}

func TestParseClassRejectsUnknownOpcode(t *testing.T) {
	_, err := ParseClass(strings.NewReader(`{"name":"A","methods":[{"name":"m","descriptor":"()V","code":{"instructions":[{"pc":0,"op":"frobnicate"}]}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown opcode")
}

func TestParseClassRejectsUnorderedOffsets(t *testing.T) {
	_, err := ParseClass(strings.NewReader(`{"name":"A","methods":[{"name":"m","descriptor":"()V","code":{"instructions":[{"pc":5,"op":"nop"},{"pc":5,"op":"nop"}]}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestRepositoryLookup(t *testing.T) {
	repo := NewMemoryRepository(&Class{Name: "com.example.A"})
	cls, err := repo.Lookup("com.example.A")
	require.NoError(t, err)
	assert.Equal(t, "com.example.A", cls.Name)

	_, err = repo.Lookup("com.example.B")
	require.Error(t, err)
	var missing *MissingClassError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "com.example.B", missing.Name)
}
