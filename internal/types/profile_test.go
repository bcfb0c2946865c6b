package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileData_AllSkillStrings(t *testing.T) {
	p := &ProfileData{
		Languages: []string{"Python", "Go"},
		Skills:    []string{"React"},
		Tools:     []string{"Git", "Docker"},
	}

	all := p.AllSkillStrings()
	assert.Equal(t, []string{"Python", "Go", "React", "Git", "Docker"}, all)
}

func TestProfileData_AllSkillStrings_Empty(t *testing.T) {
	p := &ProfileData{}

	assert.Empty(t, p.AllSkillStrings())
	assert.False(t, p.HasSkills())
}

func TestProfileData_HasSkills(t *testing.T) {
	assert.True(t, (&ProfileData{Tools: []string{"git"}}).HasSkills())
	assert.True(t, (&ProfileData{Languages: []string{"go"}}).HasSkills())
}
