package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*** DTOs shared across handlers ***/

type SubmitRequest struct {
	ConsentAgreed string `json:"consentAgreed"`
	GradeLevel    string `json:"gradeLevel"`

	Q1A string `json:"q1_a"`
	Q1B string `json:"q1_b"`
	Q1C any    `json:"q1_c"` // scalar or list; coerced on insert
	Q1D string `json:"q1_d"`
	Q1E string `json:"q1_e"`
	Q1F string `json:"q1_f"`

	Q2A string `json:"q2_a"`
	Q2B string `json:"q2_b"`
	Q2C string `json:"q2_c"`

	QuizQ1 string `json:"quiz_q1"`
	QuizQ2 string `json:"quiz_q2"`
	QuizQ3 string `json:"quiz_q3"`
	QuizQ4 string `json:"quiz_q4"`
	QuizQ5 string `json:"quiz_q5"`
	QuizQ6 string `json:"quiz_q6"`
	QuizQ7 string `json:"quiz_q7"`

	FinalReadingDuration int `json:"finalReadingDuration"`
}

type ResponseDTO struct {
	ID            string   `json:"id"`
	ConsentAgreed bool     `json:"consentAgreed"`
	GradeLevel    string   `json:"gradeLevel"`
	Q1A           string   `json:"q1_a"`
	Q1B           string   `json:"q1_b"`
	Q1C           []string `json:"q1_c"`
	Q1D           string   `json:"q1_d"`
	Q1E           string   `json:"q1_e"`
	Q1F           string   `json:"q1_f"`
	Q2A           string   `json:"q2_a"`
	Q2B           string   `json:"q2_b"`
	Q2C           string   `json:"q2_c"`

	QuizQ1 string `json:"quiz_q1"`
	QuizQ2 string `json:"quiz_q2"`
	QuizQ3 string `json:"quiz_q3"`
	QuizQ4 string `json:"quiz_q4"`
	QuizQ5 string `json:"quiz_q5"`
	QuizQ6 string `json:"quiz_q6"`
	QuizQ7 string `json:"quiz_q7"`

	FinalReadingDuration int       `json:"finalReadingDuration"`
	Timestamp            time.Time `json:"timestamp"`
}

func toResponseDTO(r SurveyResponse) ResponseDTO {
	return ResponseDTO{
		ID:            r.ID,
		ConsentAgreed: r.ConsentAgreed,
		GradeLevel:    r.GradeLevel,
		Q1A:           r.Q1A,
		Q1B:           r.Q1B,
		Q1C:           parseStringArray(r.Q1CRaw),
		Q1D:           r.Q1D,
		Q1E:           r.Q1E,
		Q1F:           r.Q1F,
		Q2A:           r.Q2A,
		Q2B:           r.Q2B,
		Q2C:           r.Q2C,

		QuizQ1: r.QuizQ1,
		QuizQ2: r.QuizQ2,
		QuizQ3: r.QuizQ3,
		QuizQ4: r.QuizQ4,
		QuizQ5: r.QuizQ5,
		QuizQ6: r.QuizQ6,
		QuizQ7: r.QuizQ7,

		FinalReadingDuration: r.ReadingDuration,
		Timestamp:            r.SubmittedAt,
	}
}

/*** Submission ***/

func SubmitResponse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		// no payload validation; unparseable fields just zero out
		_ = c.ShouldBindJSON(&req)

		rec := newSurveyResponse(req, time.Now())
		rec.ID = uuid.New().String()

		if err := db.Create(&rec).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "survey response recorded",
			"id":      rec.ID,
		})
	}
}

/*** Results ***/

func ListResults(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var recs []SurveyResponse
		if err := db.Order("submitted_at DESC, id DESC").Find(&recs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		out := make([]ResponseDTO, 0, len(recs))
		for _, r := range recs {
			out = append(out, toResponseDTO(r))
		}
		c.JSON(http.StatusOK, out)
	}
}
