package service

import (
	"context"
	"fmt"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/i18n"
	"github.com/1739467001-svg/kaiyan/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LocaleService couples the language flag to the catalog: toggling
// wholesale-reseeds both catalog sequences with the new language's
// dataset. Items added since the last seed are discarded; orders keep
// whatever language was active when they were booked.
type LocaleService struct {
	translator  *i18n.Translator
	catalogRepo ports.CatalogRepo
	logger      logger.Logger
}

func NewLocaleService(translator *i18n.Translator, catalogRepo ports.CatalogRepo, logger logger.Logger) *LocaleService {
	return &LocaleService{
		translator:  translator,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *LocaleService) Language(_ context.Context) domain.Language {
	return s.translator.Language()
}

func (s *LocaleService) Toggle(ctx context.Context) (domain.Language, error) {
	lang := s.translator.Toggle()

	if err := s.catalogRepo.Reseed(ctx, lang); err != nil {
		return lang, fmt.Errorf("reseed catalog: %w", err)
	}

	s.logger.Info("language toggled", logger.String("language", string(lang)))

	return lang, nil
}

func (s *LocaleService) Translate(_ context.Context, key string) string {
	return s.translator.Translate(key)
}

func (s *LocaleService) Translations(_ context.Context) map[string]string {
	return s.translator.All()
}
