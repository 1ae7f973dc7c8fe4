package memory

import (
	"fmt"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// QualityRepository provides in-memory tool quality storage
type QualityRepository struct {
	qualities    []entities.Quality
	qualitiesMap map[entities.QualityID]int
}

func NewQualityRepository() *QualityRepository {
	return &QualityRepository{
		qualitiesMap: make(map[entities.QualityID]int),
	}
}

var _ repositories.QualityRepository = (*QualityRepository)(nil)

func (r *QualityRepository) LoadQualities(qualities []*entities.Quality) error {
	for _, q := range qualities {
		if q == nil {
			return fmt.Errorf("cannot load nil quality")
		}
		r.AddQuality(*q)
	}
	return nil
}

func (r *QualityRepository) AddQuality(q entities.Quality) {
	if index, exists := r.qualitiesMap[q.ID]; exists {
		r.qualities[index] = q
		return
	}
	r.qualitiesMap[q.ID] = len(r.qualities)
	r.qualities = append(r.qualities, q)
}

func (r *QualityRepository) IsValid(id entities.QualityID) bool {
	_, exists := r.qualitiesMap[id]
	return exists
}

func (r *QualityRepository) GetQuality(id entities.QualityID) (*entities.Quality, error) {
	index, exists := r.qualitiesMap[id]
	if !exists {
		return nil, fmt.Errorf("quality not found: %s", id)
	}
	return &r.qualities[index], nil
}

func (r *QualityRepository) GetAllQualities() ([]*entities.Quality, error) {
	qualities := make([]*entities.Quality, 0, len(r.qualities))
	for i := range r.qualities {
		qualities = append(qualities, &r.qualities[i])
	}
	return qualities, nil
}
