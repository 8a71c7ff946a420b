// file: internals/features/school/grading/service/snapshot.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gradingModel "sekolahku_backend/internals/features/school/grading/model"
)

/* =========================================================
   GradingSnapshot — kontrak dengan kolaborator data-access:
   SEMUA data satu kohort/tahun diambil sekali (bulk, bukan
   N+1 per siswa), lalu engine bekerja murni in-memory.
   Tenant selalu parameter eksplisit, tidak ada ambient state.
   ========================================================= */

type GradingSnapshot struct {
	SchoolID uuid.UUID
	ClassID  uuid.UUID
	Year     int

	// Urut nama (urutan tampil default kohort)
	Students []StudentInfo

	// Urut posisi area lalu posisi subject
	Curriculum []AreaCurriculum

	// Periode tahun ajaran, urut period_number
	Periods   []gradingModel.PeriodModel
	PeriodIDs []uuid.UUID

	// [studentID][subjectID][periodID] → nilai asli + recovery
	Grades map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade

	Scale     *GradeScale
	Promotion *gradingModel.PromotionConfigModel
}

// PeriodByID cari periode dalam snapshot
func (s *GradingSnapshot) PeriodByID(id uuid.UUID) *gradingModel.PeriodModel {
	for i := range s.Periods {
		if s.Periods[i].PeriodID == id {
			return &s.Periods[i]
		}
	}
	return nil
}

// GradesForPeriod proyeksi nilai satu siswa untuk satu periode
func (s *GradingSnapshot) GradesForPeriod(studentID, periodID uuid.UUID) map[uuid.UUID]SubjectPeriodGrade {
	out := map[uuid.UUID]SubjectPeriodGrade{}
	for subjectID, perPeriod := range s.Grades[studentID] {
		if g, ok := perPeriod[periodID]; ok {
			out[subjectID] = g
		}
	}
	return out
}

// RequirePromotionConfig config promosi wajib ada untuk laporan tahunan
func (s *GradingSnapshot) RequirePromotionConfig() (*gradingModel.PromotionConfigModel, error) {
	if s.Promotion == nil {
		return nil, NewConfigurationError(s.SchoolID, "promotion config")
	}
	return s.Promotion, nil
}

// LoadGradingSnapshot mengambil seluruh data penilaian satu kelas untuk
// satu tahun ajaran dalam sekali jalan: siswa, kurikulum (area, subject,
// assignment, bobot), periode, nilai average+recovery, grade scale, dan
// promotion config. Skala yang hilang/rusak langsung gagal dengan
// ConfigurationError — laporan tidak boleh jalan tanpa skala valid.
func LoadGradingSnapshot(ctx context.Context, db *gorm.DB, schoolID, classID uuid.UUID, year int) (*GradingSnapshot, error) {
	tx := db.WithContext(ctx)

	snap := &GradingSnapshot{
		SchoolID: schoolID,
		ClassID:  classID,
		Year:     year,
		Grades:   map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{},
	}

	// ---- siswa aktif kelas ini
	var students []gradingModel.StudentModel
	if err := tx.
		Where("student_school_id = ? AND student_class_id = ? AND student_is_active = TRUE",
			schoolID, classID).
		Order("student_full_name ASC, student_id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	snap.Students = make([]StudentInfo, 0, len(students))
	for _, s := range students {
		snap.Students = append(snap.Students, StudentInfo{
			StudentID: s.StudentID,
			FullName:  s.StudentFullName,
		})
	}

	// ---- periode tahun ajaran
	if err := tx.
		Where("period_school_id = ? AND period_year = ?", schoolID, year).
		Order("period_number ASC").
		Find(&snap.Periods).Error; err != nil {
		return nil, err
	}
	snap.PeriodIDs = make([]uuid.UUID, 0, len(snap.Periods))
	for _, p := range snap.Periods {
		snap.PeriodIDs = append(snap.PeriodIDs, p.PeriodID)
	}

	// ---- grade scale (fail closed)
	var bands []gradingModel.GradeScaleBandModel
	if err := tx.
		Where("grade_scale_band_school_id = ?", schoolID).
		Order("grade_scale_band_min ASC").
		Find(&bands).Error; err != nil {
		return nil, err
	}
	scale, err := NewGradeScaleFromModels(schoolID, bands)
	if err != nil {
		return nil, err
	}
	snap.Scale = scale

	// ---- promotion config (boleh absen; laporan tahunan yang menuntut)
	var promo gradingModel.PromotionConfigModel
	switch err := tx.
		Where("promotion_config_school_id = ?", schoolID).
		First(&promo).Error; {
	case err == nil:
		snap.Promotion = &promo
	case errors.Is(err, gorm.ErrRecordNotFound):
		// dibiarkan nil
	default:
		return nil, err
	}

	// ---- kurikulum: area + subject + assignment + bobot eksplisit
	var areas []gradingModel.AreaModel
	if err := tx.
		Where("area_school_id = ?", schoolID).
		Order("area_position ASC, area_name ASC").
		Find(&areas).Error; err != nil {
		return nil, err
	}

	var subjects []gradingModel.SubjectModel
	if err := tx.
		Where("subject_school_id = ?", schoolID).
		Order("subject_position ASC, subject_name ASC").
		Find(&subjects).Error; err != nil {
		return nil, err
	}

	var assignments []gradingModel.TeachingAssignmentModel
	if err := tx.
		Where("teaching_assignment_school_id = ? AND teaching_assignment_class_id = ?",
			schoolID, classID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	assignBySubject := map[uuid.UUID]*gradingModel.TeachingAssignmentModel{}
	for i := range assignments {
		assignBySubject[assignments[i].TeachingAssignmentSubjectID] = &assignments[i]
	}

	var weights []gradingModel.AreaSubjectWeightModel
	if err := tx.
		Where("area_subject_weight_school_id = ?", schoolID).
		Find(&weights).Error; err != nil {
		return nil, err
	}
	type areaSubjectKey struct{ area, subject uuid.UUID }
	weightByKey := map[areaSubjectKey]gradingModel.AreaSubjectWeightModel{}
	for _, w := range weights {
		weightByKey[areaSubjectKey{w.AreaSubjectWeightAreaID, w.AreaSubjectWeightSubjectID}] = w
	}

	snap.Curriculum = make([]AreaCurriculum, 0, len(areas))
	for _, area := range areas {
		ac := AreaCurriculum{AreaID: area.AreaID, Name: area.AreaName}
		for _, subj := range subjects {
			if subj.SubjectAreaID == nil || *subj.SubjectAreaID != area.AreaID {
				continue
			}
			sc := SubjectCurriculum{
				SubjectID:    subj.SubjectID,
				Name:         subj.SubjectName,
				Abbreviation: subj.SubjectAbbreviation,
				Weights:      EqualSplitWeights(),
			}
			if asg := assignBySubject[subj.SubjectID]; asg != nil {
				sc.HasAssignment = true
				sc.CreditHours = asg.TeachingAssignmentCreditHours
				if asg.HasExplicitWeights() {
					sc.Weights = WeightsFromPercents(
						*asg.TeachingAssignmentSerPercent,
						*asg.TeachingAssignmentSaberPercent,
						*asg.TeachingAssignmentHacerPercent,
					)
				}
			}
			if w, ok := weightByKey[areaSubjectKey{area.AreaID, subj.SubjectID}]; ok {
				pct := w.AreaSubjectWeightPercent
				sc.AreaWeightPercent = &pct
			}
			ac.Subjects = append(ac.Subjects, sc)
		}
		if len(ac.Subjects) > 0 {
			snap.Curriculum = append(snap.Curriculum, ac)
		}
	}

	// ---- nilai: SUBJECT_PERIOD_AVERAGE + RECOVERY seluruh kohort/tahun
	if len(snap.PeriodIDs) > 0 && len(students) > 0 {
		studentIDs := make([]uuid.UUID, 0, len(students))
		for _, s := range students {
			studentIDs = append(studentIDs, s.StudentID)
		}

		var rows []gradingModel.GradeModel
		if err := tx.
			Where("grade_school_id = ? AND grade_student_id IN ? AND grade_period_id IN ? AND grade_kind IN ?",
				schoolID, studentIDs, snap.PeriodIDs,
				[]string{gradingModel.GradeKindSubjectPeriodAverage, gradingModel.GradeKindRecovery}).
			Find(&rows).Error; err != nil {
			return nil, err
		}

		for _, row := range rows {
			perSubject, ok := snap.Grades[row.GradeStudentID]
			if !ok {
				perSubject = map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{}
				snap.Grades[row.GradeStudentID] = perSubject
			}
			perPeriod, ok := perSubject[row.GradeSubjectID]
			if !ok {
				perPeriod = map[uuid.UUID]SubjectPeriodGrade{}
				perSubject[row.GradeSubjectID] = perPeriod
			}
			g := perPeriod[row.GradePeriodID]
			v := row.GradeValue
			switch row.GradeKind {
			case gradingModel.GradeKindSubjectPeriodAverage:
				g.Original = &v
			case gradingModel.GradeKindRecovery:
				g.Recovery = &v
			}
			perPeriod[row.GradePeriodID] = g
		}
	}

	return snap, nil
}
