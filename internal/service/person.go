package service

import (
	"fmt"

	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/repository"

	"github.com/google/uuid"
)

// Person is one assignable identity from the merged staff+freelancer space.
// The Kind tag is established exactly once, here, when the two lists are
// merged; downstream consumers match on the tag instead of probing shape.
type Person struct {
	ID       uuid.UUID         `json:"id"`
	Kind     models.PersonKind `json:"kind"`
	FullName string            `json:"full_name"`
	Role     string            `json:"role"`
	Phone    string            `json:"phone"`
}

// PersonDirectory is a lookup from person id to the tagged person
type PersonDirectory map[string]Person

// Resolve looks up a person by id string
func (d PersonDirectory) Resolve(id string) (Person, bool) {
	p, ok := d[id]
	return p, ok
}

// PersonService merges staff and freelancers into one addressable identity
// space for the assignment editor
type PersonService struct {
	staffRepo      repository.StaffRepositoryInterface
	freelancerRepo repository.FreelancerRepositoryInterface
}

// Ensure PersonService implements PersonServiceInterface
var _ PersonServiceInterface = (*PersonService)(nil)

// NewPersonService creates a new person service
func NewPersonService(staffRepo repository.StaffRepositoryInterface, freelancerRepo repository.FreelancerRepositoryInterface) *PersonService {
	return &PersonService{
		staffRepo:      staffRepo,
		freelancerRepo: freelancerRepo,
	}
}

// Directory builds the merged person lookup for a firm. Person ids are
// unique across the union; staff wins if a freelancer ever shares an id.
func (s *PersonService) Directory(firmID uuid.UUID) (PersonDirectory, error) {
	staff, err := s.staffRepo.ListByFirmID(firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	freelancers, err := s.freelancerRepo.ListByFirmID(firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}

	directory := make(PersonDirectory, len(staff)+len(freelancers))
	for _, f := range freelancers {
		directory[f.ID.String()] = Person{
			ID:       f.ID,
			Kind:     models.PersonKindFreelancer,
			FullName: f.FullName,
			Role:     f.Role,
			Phone:    f.Phone,
		}
	}
	for _, m := range staff {
		directory[m.ID.String()] = Person{
			ID:       m.ID,
			Kind:     models.PersonKindStaff,
			FullName: m.FullName,
			Role:     m.Role,
			Phone:    m.Phone,
		}
	}
	return directory, nil
}

// ListPeople returns the merged person list for a firm, staff first
func (s *PersonService) ListPeople(firmID uuid.UUID) ([]Person, error) {
	staff, err := s.staffRepo.ListByFirmID(firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	freelancers, err := s.freelancerRepo.ListByFirmID(firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}

	people := make([]Person, 0, len(staff)+len(freelancers))
	for _, m := range staff {
		people = append(people, Person{
			ID:       m.ID,
			Kind:     models.PersonKindStaff,
			FullName: m.FullName,
			Role:     m.Role,
			Phone:    m.Phone,
		})
	}
	for _, f := range freelancers {
		people = append(people, Person{
			ID:       f.ID,
			Kind:     models.PersonKindFreelancer,
			FullName: f.FullName,
			Role:     f.Role,
			Phone:    f.Phone,
		})
	}
	return people, nil
}
