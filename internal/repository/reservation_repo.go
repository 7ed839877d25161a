package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	reservationColumns = `reservation_id, instructor_id, course_id, department_id, building, roomno, reserv_date, hours_number`

	sqlInsertReservation = `INSERT INTO reservation
		(instructor_id, course_id, department_id, building, roomno, reserv_date, hours_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING reservation_id`
	sqlUpdateReservation = `UPDATE reservation
		SET instructor_id = ?, course_id = ?, department_id = ?, building = ?, roomno = ?, reserv_date = ?, hours_number = ?
		WHERE reservation_id = ?`
	sqlDeleteReservation  = `DELETE FROM reservation WHERE reservation_id = ?`
	sqlSelectReservation  = `SELECT ` + reservationColumns + ` FROM reservation WHERE reservation_id = ?`
	sqlSelectReservations = `SELECT ` + reservationColumns + ` FROM reservation ORDER BY reserv_date DESC, reservation_id DESC`
)

// ReservationRepository 教室预约数据访问接口
type ReservationRepository interface {
	// Create 写入后回填数据库生成的 reservation_id
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type reservationRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewReservationRepo 创建 ReservationRepository 实例
func NewReservationRepo(db *gorm.DB, exec *Executor) ReservationRepository {
	return &reservationRepo{db: db, exec: exec}
}

func (r *reservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	return r.exec.ExecReturning(ctx, &res.ReservationID, sqlInsertReservation,
		res.InstructorID, res.CourseID, res.DepartmentID, res.Building, res.RoomNo, res.ReservDate, res.HoursNumber)
}

func (r *reservationRepo) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	var res model.Reservation
	if err := queryOne(ctx, r.db, &res, sqlSelectReservation, id); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	var list []model.Reservation
	err := queryAll(ctx, r.db, &list, sqlSelectReservations)
	return list, err
}

func (r *reservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateReservation,
		res.InstructorID, res.CourseID, res.DepartmentID, res.Building, res.RoomNo, res.ReservDate, res.HoursNumber,
		res.ReservationID))
}

func (r *reservationRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteReservation, id))
}
