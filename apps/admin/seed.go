package main

import (
	"fmt"

	"github.com/darasahq/darasa/core/course"
)

// sample catalog used by the seed command
var sampleCourses = []course.NewCourse{
	{
		Title:       "Complete Web Development Bootcamp",
		Description: "HTML, CSS, JavaScript and modern frameworks from scratch.",
		Instructor:  "Sarah Johnson",
		Price:       89.99,
		Level:       "Beginner",
		Category:    "Development",
		Duration:    "42 hours",
		Language:    "English",
		Status:      course.StatusPublished,
	},
	{
		Title:       "Data Science with Python",
		Description: "Pandas, NumPy and machine learning fundamentals.",
		Instructor:  "Miguel Alvarez",
		Price:       119.99,
		Level:       "Intermediate",
		Category:    "Data Science",
		Duration:    "38 hours",
		Language:    "English",
		Status:      course.StatusPublished,
	},
	{
		Title:       "UI/UX Design Principles",
		Description: "Design thinking, wireframing and prototyping workflows.",
		Instructor:  "Amina Diallo",
		Price:       74.99,
		Level:       "Beginner",
		Category:    "Design",
		Duration:    "21 hours",
		Language:    "French",
		Status:      course.StatusUnderReview,
	},
	{
		Title:       "Advanced Cloud Architecture",
		Description: "Designing resilient distributed systems on public clouds.",
		Instructor:  "Wei Chen",
		Price:       149.99,
		Level:       "Advanced",
		Category:    "IT & Software",
		Duration:    "30 hours",
		Language:    "English",
		Status:      course.StatusDraft,
	},
}

func (cli *commandLine) seed() error {
	for _, nc := range sampleCourses {
		crs, err := cli.courseSvc.Create(nc, "seed")
		if err != nil {
			return err
		}
		fmt.Printf("seeded course %d: %s\n", crs.ID, crs.Title)
	}
	return nil
}
