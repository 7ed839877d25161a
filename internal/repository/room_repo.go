package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	sqlInsertRoom  = `INSERT INTO room (building, roomno, capacity) VALUES (?, ?, ?)`
	sqlUpdateRoom  = `UPDATE room SET capacity = ? WHERE building = ? AND roomno = ?`
	sqlDeleteRoom  = `DELETE FROM room WHERE building = ? AND roomno = ?`
	sqlSelectRoom  = `SELECT building, roomno, capacity FROM room WHERE building = ? AND roomno = ?`
	sqlSelectRooms = `SELECT building, roomno, capacity FROM room ORDER BY building, roomno`
)

// RoomRepository 教室数据访问接口
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	Get(ctx context.Context, building, roomNo string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, building, roomNo string) error
}

type roomRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB, exec *Executor) RoomRepository {
	return &roomRepo{db: db, exec: exec}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	_, err := r.exec.Exec(ctx, sqlInsertRoom, room.Building, room.RoomNo, room.Capacity)
	return err
}

func (r *roomRepo) Get(ctx context.Context, building, roomNo string) (*model.Room, error) {
	var room model.Room
	if err := queryOne(ctx, r.db, &room, sqlSelectRoom, building, roomNo); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := queryAll(ctx, r.db, &rooms, sqlSelectRooms)
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateRoom, room.Capacity, room.Building, room.RoomNo))
}

func (r *roomRepo) Delete(ctx context.Context, building, roomNo string) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteRoom, building, roomNo))
}
