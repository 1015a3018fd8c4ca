package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dao"
)

var validate = validator.New()

type NewsletterService struct {
	subscriberDao *dao.SubscriberDao
	log           *logrus.Logger
}

func NewNewsletterService(db *gorm.DB, log *logrus.Logger) *NewsletterService {
	return &NewsletterService{subscriberDao: dao.NewSubscriberDao(db), log: log}
}

// Subscribe is idempotent; the address is stored lower-cased.
func (s *NewsletterService) Subscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email,max=255"); err != nil {
		return constant.NewError(constant.CodeEmailInvalid)
	}
	created, err := s.subscriberDao.Subscribe(email)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if created {
		s.log.Infof("[Newsletter] new subscriber %s", email)
	}
	return nil
}
