package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	sonic, err := ByID("146")
	require.NoError(t, err)
	assert.Equal(t, NameSonic, sonic.Name)
	assert.Equal(t, "146", sonic.ChainID)

	_, err = ByID("999999")
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestByName(t *testing.T) {
	ethereum, err := ByName(NameEthereum)
	require.NoError(t, err)
	assert.Equal(t, "1", ethereum.ChainID)

	_, err = ByName(ChainName("Atlantis"))
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestRegistryConsistency(t *testing.T) {
	// 注册表键与链 ID 一致，名称可反查
	for chainID, c := range Chains {
		assert.Equal(t, chainID, c.ChainID)

		byName, err := ByName(c.Name)
		require.NoError(t, err)
		assert.Equal(t, c.ChainID, byName.ChainID)
	}
}
