package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gomessenger/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sentinel errors for callers to match with errors.Is.
var (
	// ErrValidation means a message is missing a required field. The realtime
	// layer logs it and drops the record; it is never surfaced to the client.
	ErrValidation = errors.New("message is missing required fields")
	// ErrStoreUnavailable means the backing database rejected or could not
	// process the write.
	ErrStoreUnavailable = errors.New("message store unavailable")
	// ErrPhoneTaken means the phone number is already registered.
	ErrPhoneTaken = errors.New("phone number already registered")
	// ErrUserNotFound means no account matches the given phone number.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials means the password did not match the stored hash.
	ErrBadCredentials = errors.New("incorrect credentials")
)

const bcryptCost = 12

type Storage interface {
	SaveMessage(msg *models.Message) error
	MessagesBetween(userA, userB string) ([]models.Message, error)

	CreateUser(user *models.User) error
	FindUserByPhone(phone string) (*models.User, error)
	Authenticate(phone, password string) (*models.User, error)
	ListUsers() ([]models.User, error)

	MarkOnline(username string) error
	MarkOffline(username string) error
	OnlineUsers() ([]string, error)
	PublishEvent(evt models.Event) error
}

// Service implements Storage on PostgreSQL (via GORM) and Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveMessage appends a message to the durable log. GORM fills in the ID and
// the created/updated timestamps on success.
func (s *Service) SaveMessage(msg *models.Message) error {
	if msg.SenderID == "" || msg.ReceiverID == "" || msg.Text == "" {
		return fmt.Errorf("%w: sender=%q receiver=%q text present=%t",
			ErrValidation, msg.SenderID, msg.ReceiverID, msg.Text != "")
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// MessagesBetween returns every message exchanged between the two users,
// in either direction, ascending by creation time. Equal timestamps are
// tie-broken by primary key, i.e. insertion order.
func (s *Service) MessagesBetween(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at asc, id asc").
		Find(&messages).Error
	if err != nil {
		log.Printf("ERROR: Failed to load history for %s/%s: %v", userA, userB, err)
		return nil, err
	}
	return messages, nil
}

// CreateUser registers a new account. The plaintext password is replaced with
// its bcrypt hash before the record is written.
func (s *Service) CreateUser(user *models.User) error {
	existing, err := s.FindUserByPhone(user.Phone)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	if err := s.DB.Create(user).Error; err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", user.Phone, err)
		return err
	}
	return nil
}

func (s *Service) FindUserByPhone(phone string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate looks the account up by phone and verifies the password
// against the stored bcrypt hash.
func (s *Service) Authenticate(phone, password string) (*models.User, error) {
	user, err := s.FindUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}

func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at asc").Find(&users).Error; err != nil {
		log.Printf("ERROR: Failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}
