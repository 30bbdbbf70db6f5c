package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/testutil"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.DataConfigInfo = domain.ConfigInfo{
			Path:    "/data/tick/config.toml",
			Content: "[storage]\nbackend = \"sqlite\"",
			Exists:  true,
		}
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path:    "/home/test/.config/tick/config.toml",
			Content: "[log]\nlevel = \"debug\"",
			Exists:  true,
		}

		loader := testutil.NewMockConfigLoader()
		loader.Config.Storage.Backend = domain.BackendSQLite

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/data/tick/config.toml", out.DataConfig.Path)
		assert.True(t, out.DataConfig.Exists)
		assert.Equal(t, "[log]\nlevel = \"debug\"", out.GlobalConfig.Content)
		require.NotNil(t, out.EffectiveConfig)
		assert.Equal(t, domain.BackendSQLite, out.EffectiveConfig.Storage.Backend)
	})

	t.Run("returns loader error", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.LoadErr = errors.New("bad toml")

		_, err := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader).Execute(context.Background(), usecase.ShowConfigInput{})

		assert.EqualError(t, err, "bad toml")
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates data dir config with defaults", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, manager.DataConfigInfo.Path, out.Path)
		assert.True(t, manager.InitDataCalled)
		assert.False(t, manager.InitGlobalCalled)
		assert.Equal(t, domain.NewDefaultConfig(), manager.InitConfig)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, manager.GlobalConfigInfo.Path, out.Path)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("existing config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitDataErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
