package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakegulf-cms/models"
)

func TestContentBlockKeepsUnknownKeys(t *testing.T) {
	in := `{"type":"callout","content":{"text":"Read the terms"},"variant":"warning","order":3}`

	var block models.ContentBlock
	require.NoError(t, json.Unmarshal([]byte(in), &block))

	assert.Equal(t, "callout", block.Type)
	assert.JSONEq(t, `{"text":"Read the terms"}`, string(block.Content))
	assert.Contains(t, block.Attrs, "variant")

	out, err := json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestContentBlocksRoundTripOnlySuppliedKeys(t *testing.T) {
	in := `[{"type":"divider"},{"content":"x"},null,{"type":"","content":null},{"type":null}]`

	var blocks models.ContentBlocks
	require.NoError(t, json.Unmarshal([]byte(in), &blocks))

	out, err := json.Marshal(blocks)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestContentBlockBuiltInCodeOmitsEmptyKeys(t *testing.T) {
	out, err := json.Marshal(models.ContentBlock{Type: "divider"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"divider"}`, string(out))
}

func TestContentBlockRejectsNonObjects(t *testing.T) {
	var blocks models.ContentBlocks
	err := json.Unmarshal([]byte(`["paragraph"]`), &blocks)
	assert.Error(t, err)

	var block models.ContentBlock
	assert.Error(t, json.Unmarshal([]byte(`{"type":42}`), &block))
}

func TestRoleRank(t *testing.T) {
	assert.Greater(t, models.RoleSuperadmin.Rank(), models.RoleAdmin.Rank())
	assert.Greater(t, models.RoleEditor.Rank(), models.RoleWriter.Rank())
	assert.Zero(t, models.Role("owner").Rank())
	assert.False(t, models.Role("owner").Valid())
}

func TestDisplayNameFallsBackToUsername(t *testing.T) {
	empty := ""
	name := "Dana"

	assert.Equal(t, "dana", (&models.User{Username: "dana"}).DisplayName())
	assert.Equal(t, "dana", (&models.User{Username: "dana", Name: &empty}).DisplayName())
	assert.Equal(t, "Dana", (&models.User{Username: "dana", Name: &name}).DisplayName())
}
