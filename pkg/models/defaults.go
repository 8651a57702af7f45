package models

import "encoding/json"

// DefaultResumeData returns the document a new user starts from.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Sections: []ResumeSection{
			{
				ID: "education-1", Type: SectionEducation, Title: "Education", Order: 0, Visible: true,
				Data: json.RawMessage(`[{"institution":"","location":"","degree":"","gpa":"","startDate":"","endDate":"","thesis":"","coursework":"","achievements":""}]`),
			},
			{
				ID: "experience-1", Type: SectionExperience, Title: "Experience", Order: 1, Visible: true,
				Data: json.RawMessage(`[]`),
			},
			{
				ID: "skills-1", Type: SectionSkills, Title: "Skills", Order: 2, Visible: true,
				Data: json.RawMessage(`{"categories":[{"name":"Programming Languages","items":""},{"name":"Technologies & Frameworks","items":""},{"name":"Tools","items":""}]}`),
			},
			{
				ID: "projects-1", Type: SectionProjects, Title: "Projects", Order: 3, Visible: true,
				Data: json.RawMessage(`[]`),
			},
		},
	}
}

// ExampleResumeData returns a fully populated document for trying the renderers.
func ExampleResumeData() ResumeData {
	return ResumeData{
		Personal: PersonalInfo{
			FullName: "Levi Ackerman",
			Location: "Paradis Island, Shiganshina District",
			Phone:    "+123-456-7890",
			Email:    "levi.ackerman@survey.corps",
			LinkedIn: "linkedin.com/in/levi-ackerman",
			GitHub:   "github.com/humanity-strongest",
			Website:  "leviackerman.dev",
		},
		Sections: []ResumeSection{
			{
				ID: "executive-summary-1", Type: legacySummary, Title: "Professional Summary", Order: 0, Visible: true,
				Data: json.RawMessage(`{"content":"Tactical specialist with 10+ years of experience in high-stakes operations, team leadership and strategic planning. Known for sound decisions under pressure."}`),
			},
			{
				ID: "education-1", Type: SectionEducation, Title: "Education", Order: 1, Visible: true,
				Data: json.RawMessage(`[
{"institution":"Survey Corps Military Academy","location":"Wall Rose, Paradis","degree":"Advanced Tactical Operations & Leadership Certification","gpa":"4.0","startDate":"850","endDate":"852","coursework":"Advanced Combat Strategies, 3D Maneuvering Systems, Risk Assessment","achievements":"Graduated top of class"},
{"institution":"Underground District Technical Institute","location":"Underground City, Wall Sina","degree":"Survival Tactics & Urban Combat Diploma","gpa":"","startDate":"845","endDate":"848","coursework":"Stealth Operations, Resource Management"}
]`),
			},
			{
				ID: "experience-1", Type: SectionExperience, Title: "Professional Experience", Order: 2, Visible: true,
				Data: json.RawMessage(`[
{"organization":"Survey Corps","location":"Wall Rose, Paradis Island","position":"Captain & Special Operations Squad Leader","startDate":"854","endDate":"Present","bullets":["Led a squad of 10+ soldiers in reconnaissance missions with a 100% success rate","Developed tactical protocols that reduced casualty rates by 85%","Mentored junior officers in combat technique and decision-making"]},
{"organization":"Survey Corps","location":"Wall Rose, Paradis Island","position":"Squad Leader","startDate":"852","endDate":"854","bullets":["Managed a squad of 5-8 members on expeditions beyond the walls","Trained new recruits in 3D maneuvering gear operation"]}
]`),
			},
			{
				ID: "skills-1", Type: SectionSkills, Title: "Technical Skills", Order: 3, Visible: true,
				Data: json.RawMessage(`{"categories":[
{"name":"Combat & Tactical","items":"Advanced 3D Maneuvering, Close-Quarter Combat, Strategic Planning"},
{"name":"Leadership & Management","items":"Team Leadership, Crisis Management, Training & Development"},
{"name":"Soft Skills","items":"Problem Solving, Attention to Detail, Mentorship"}
]}`),
			},
			{
				ID: "projects-1", Type: SectionProjects, Title: "Key Operations & Projects", Order: 4, Visible: true,
				Data: json.RawMessage(`[
{"name":"Operation Reclaim Wall Maria","dates":"857","technologies":"Strategic Planning, Multi-Unit Coordination","bullets":["Led squad operations during a large-scale campaign","Coordinated with intelligence units to adjust tactics in real time"]},
{"name":"Underground Rescue Initiative","dates":"850","technologies":"Urban Combat, Search & Rescue","bullets":["Ran rescue operations in low-visibility underground environments"]}
]`),
			},
			{
				ID: "certifications-1", Type: SectionCertifications, Title: "Certifications & Awards", Order: 5, Visible: true,
				Data: json.RawMessage(`{"items":["Elite Squad Leader Certification - Survey Corps (852)","Advanced 3D Maneuvering Instructor License (853)","Distinguished Service Medal for Exceptional Leadership (856)"]}`),
			},
		},
	}
}
