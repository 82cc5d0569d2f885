package service

import (
	"context"
	"testing"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/i18n"
	"github.com/1739467001-svg/kaiyan/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocaleService_Toggle_ReseedsCatalog(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewLocaleService(i18n.New(domain.LanguageZH), repo, newTestLogger(t))

	repo.EXPECT().Reseed(mock.Anything, domain.LanguageEN).Return(nil)

	lang, err := svc.Toggle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEN, lang)
	assert.Equal(t, domain.LanguageEN, svc.Language(context.Background()))
}

func TestLocaleService_Toggle_RoundTrip(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewLocaleService(i18n.New(domain.LanguageZH), repo, newTestLogger(t))

	repo.EXPECT().Reseed(mock.Anything, domain.LanguageEN).Return(nil).Once()
	repo.EXPECT().Reseed(mock.Anything, domain.LanguageZH).Return(nil).Once()

	_, err := svc.Toggle(context.Background())
	require.NoError(t, err)
	lang, err := svc.Toggle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.LanguageZH, lang)
}

func TestLocaleService_Translate_FollowsLanguage(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewLocaleService(i18n.New(domain.LanguageZH), repo, newTestLogger(t))

	assert.Equal(t, "首页", svc.Translate(context.Background(), "nav.home"))

	repo.EXPECT().Reseed(mock.Anything, domain.LanguageEN).Return(nil)
	_, err := svc.Toggle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Home", svc.Translate(context.Background(), "nav.home"))
}

func TestLocaleService_Translations_NotEmpty(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewLocaleService(i18n.New(domain.LanguageEN), repo, newTestLogger(t))

	all := svc.Translations(context.Background())

	assert.NotEmpty(t, all)
	assert.Equal(t, "Home", all["nav.home"])
}
