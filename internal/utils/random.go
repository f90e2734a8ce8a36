package utils

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

var firstNames = []string{
	"alex", "sam", "jordan", "taylor", "casey", "morgan", "riley", "jamie",
	"quinn", "avery", "drew", "blake", "reese", "logan", "parker", "rowan",
}

var roles = []domain.Role{
	domain.RoleManager,
	domain.RoleStaff,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomUsername() string {
	return fmt.Sprintf("%s%d", firstNames[rand.Intn(len(firstNames))], rand.Intn(10000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomEmployee(password string) (*domain.Employee, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:     GenerateRandomUsername(),
		PasswordHash: string(passwordHash),
		Role:         GenerateRandomRole(),
	}

	return employee, nil
}

var projectTitles = []string{
	"Website Relaunch", "Mobile Onboarding", "Billing Migration", "Search Revamp",
	"Internal Dashboard", "API Gateway", "Data Warehouse", "Design System",
}

func GenerateRandomProject(manager *domain.Employee) *domain.Project {
	title := projectTitles[rand.Intn(len(projectTitles))]
	return &domain.Project{
		Title:   title,
		Body:    fmt.Sprintf("Deliverables and milestones for %s.", title),
		Status:  domain.ProjectInProgress,
		Manager: manager,
	}
}

var taskTitles = []string{
	"Draft the spec", "Set up CI", "Write integration tests", "Review the schema",
	"Prepare the rollout", "Fix the flaky build", "Polish the error pages",
}

func GenerateRandomTask(project *domain.Project, staff *domain.Employee) *domain.Task {
	return &domain.Task{
		Title:   taskTitles[rand.Intn(len(taskTitles))],
		Body:    "Seeded task.",
		Status:  domain.TaskInProgress,
		Project: project,
		Staff:   staff,
	}
}
