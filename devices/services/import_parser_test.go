package services_test

import (
	"testing"

	"inspection-backend/devices/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords_HeaderKeysEveryRow(t *testing.T) {
	headers, rows, err := services.ParseRecords("device_name,customer_name,model\nweb01,Acme,R640\ndb01,Acme,\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"device_name", "customer_name", "model"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "web01", rows[0]["device_name"])
	assert.Equal(t, "Acme", rows[0]["customer_name"])
	assert.Equal(t, "R640", rows[0]["model"])
	assert.Equal(t, "", rows[1]["model"])
}

func TestParseRecords_TrimsCellWhitespace(t *testing.T) {
	_, rows, err := services.ParseRecords("device_name,customer_name\n  web01 , Acme \n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "web01", rows[0]["device_name"])
	assert.Equal(t, "Acme", rows[0]["customer_name"])
}

func TestParseRecords_SkipsAllEmptyRows(t *testing.T) {
	_, rows, err := services.ParseRecords("device_name,customer_name\nweb01,Acme\n,\ndb01,Acme\n")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParseRecords_EmptyInputIsFatal(t *testing.T) {
	_, _, err := services.ParseRecords("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

func TestParseRecords_FieldCountMismatchIsFatal(t *testing.T) {
	_, _, err := services.ParseRecords("device_name,customer_name\nweb01,Acme,extra\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseRecords_MalformedQuotingIsFatal(t *testing.T) {
	_, _, err := services.ParseRecords("device_name,customer_name\n\"web01,Acme\n")
	require.Error(t, err)
}

func TestParseRecords_HeaderOnlyYieldsZeroRows(t *testing.T) {
	headers, rows, err := services.ParseRecords("device_name,customer_name\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"device_name", "customer_name"}, headers)
	assert.Empty(t, rows)
}
