package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRemoteUsers(t *testing.T) {
	var buf bytes.Buffer
	err := writeRemoteUsers(&buf, []models.RemoteUserRecord{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Company: models.Company{Name: "Romaguera-Crona"}},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Company: models.Company{Name: "Deckow-Crist"}},
	})
	require.NoError(t, err)

	out := buf.String()
	upper := strings.ToUpper(out)
	require.Contains(t, upper, "EMAIL")
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "Deckow-Crist")
	assert.Less(t, strings.Index(upper, "EMAIL"), strings.Index(upper, "LEANNE GRAHAM"))
	assert.Equal(t, 1, strings.Count(upper, "EMAIL"))
}
