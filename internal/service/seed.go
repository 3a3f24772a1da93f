package service

import "github.com/mergington/activities/internal/model"

// DefaultActivities returns the fixed dataset the registry is seeded with at
// startup. The registry itself is agnostic to where seed data comes from;
// this is simply the school's current catalog.
func DefaultActivities() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball team for intramural and regional competitions",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Learn tennis techniques and participate in tournaments",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu", "alex@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"maya@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Theater production and performance opportunities",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu", "zoe@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore STEM concepts",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
