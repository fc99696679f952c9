package storage

import "ewintr.nl/vidsum/model"

type SummaryRepository interface {
	Save(summary *model.Summary) error
}
