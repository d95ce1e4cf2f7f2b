package database

import (
	"strings"

	"github.com/thereayou/studybud/internal/models"
	"gorm.io/gorm"
)

// GetOrCreateTopic looks a topic up by exact name and creates it when
// missing. Room create and update both funnel through here.
func (d *Database) GetOrCreateTopic(name string) (*models.Topic, error) {
	var topic models.Topic
	err := d.db.Where("name = ?", name).First(&topic).Error
	if err == nil {
		return &topic, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	topic = models.Topic{Name: name}
	if err := d.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// SearchTopics filters by case-insensitive substring of the topic name.
// An empty query returns every topic.
func (d *Database) SearchTopics(query string) ([]models.Topic, error) {
	var topics []models.Topic
	q := "%" + escapeLike(strings.ToLower(query)) + "%"
	err := d.db.
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, q).
		Order("name ASC").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (d *Database) ListTopics() ([]models.Topic, error) {
	return d.SearchTopics("")
}

// RecentTopics returns the most recently defined topics, newest first.
func (d *Database) RecentTopics(limit int) ([]models.Topic, error) {
	var topics []models.Topic
	err := d.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
