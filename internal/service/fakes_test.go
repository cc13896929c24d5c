package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
)

// fakeStore in-memory реализация репозиториев для тестов сервисов
type fakeStore struct {
	nextID    int64
	workouts  map[int64]*model.Workout
	exercises map[int64]*model.Exercise
	sets      map[int64]*model.Set
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		workouts:  make(map[int64]*model.Workout),
		exercises: make(map[int64]*model.Exercise),
		sets:      make(map[int64]*model.Set),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) Create(ctx context.Context, workout *model.Workout) error {
	workout.ID = f.id()
	workout.CreatedAt = time.Now()
	stored := *workout
	f.workouts[workout.ID] = &stored
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*model.Workout, error) {
	workout, ok := f.workouts[id]
	if !ok {
		return nil, nil
	}
	copied := *workout
	return &copied, nil
}

func (f *fakeStore) GetByIDWithExercises(ctx context.Context, id int64) (*model.Workout, error) {
	workout, err := f.GetByID(ctx, id)
	if err != nil || workout == nil {
		return workout, err
	}
	workout.Exercises = f.exercisesOf(id)
	return workout, nil
}

func (f *fakeStore) Finish(ctx context.Context, id int64, endTime time.Time) error {
	workout, ok := f.workouts[id]
	if !ok {
		return fmt.Errorf("workout not found")
	}
	workout.EndTime = &endTime
	workout.IsFinished = true
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.workouts[id]; !ok {
		return fmt.Errorf("workout not found")
	}
	delete(f.workouts, id)
	for exerciseID, exercise := range f.exercises {
		if exercise.WorkoutID == id {
			f.deleteExerciseCascade(exerciseID)
		}
	}
	return nil
}

func (f *fakeStore) GetFinishedByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Workout, error) {
	finished := f.finishedOf(userID)
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].StartTime.After(finished[j].StartTime)
	})

	if offset >= len(finished) {
		return nil, nil
	}
	finished = finished[offset:]
	if len(finished) > limit {
		finished = finished[:limit]
	}
	return finished, nil
}

func (f *fakeStore) GetFinishedBetween(ctx context.Context, userID int64, from, to time.Time) ([]*model.Workout, error) {
	var result []*model.Workout
	for _, workout := range f.finishedOf(userID) {
		if workout.StartTime.Before(from) || !workout.StartTime.Before(to) {
			continue
		}
		workout.Exercises = f.exercisesOf(workout.ID)
		result = append(result, workout)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (f *fakeStore) GetLastFinished(ctx context.Context, userID int64) (*model.Workout, error) {
	finished := f.finishedOf(userID)
	if len(finished) == 0 {
		return nil, nil
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].StartTime.After(finished[j].StartTime)
	})
	return finished[0], nil
}

func (f *fakeStore) finishedOf(userID int64) []*model.Workout {
	var result []*model.Workout
	for _, workout := range f.workouts {
		if workout.UserID == userID && workout.IsFinished {
			copied := *workout
			result = append(result, &copied)
		}
	}
	return result
}

func (f *fakeStore) exercisesOf(workoutID int64) []*model.Exercise {
	var exercises []*model.Exercise
	for _, exercise := range f.exercises {
		if exercise.WorkoutID == workoutID {
			copied := *exercise
			copied.Sets = f.setsOf(exercise.ID)
			exercises = append(exercises, &copied)
		}
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].ID < exercises[j].ID })
	return exercises
}

func (f *fakeStore) setsOf(exerciseID int64) []*model.Set {
	var sets []*model.Set
	for _, set := range f.sets {
		if set.ExerciseID == exerciseID {
			copied := *set
			sets = append(sets, &copied)
		}
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets
}

func (f *fakeStore) deleteExerciseCascade(exerciseID int64) {
	delete(f.exercises, exerciseID)
	for setID, set := range f.sets {
		if set.ExerciseID == exerciseID {
			delete(f.sets, setID)
		}
	}
}

// fakeExerciseRepo реализует ExerciseRepo поверх fakeStore
type fakeExerciseRepo struct{ store *fakeStore }

func (f *fakeExerciseRepo) Create(ctx context.Context, workoutID int64, name string) (*model.Exercise, error) {
	exercise := &model.Exercise{ID: f.store.id(), WorkoutID: workoutID, Name: name}
	stored := *exercise
	f.store.exercises[exercise.ID] = &stored
	return exercise, nil
}

func (f *fakeExerciseRepo) GetByID(ctx context.Context, id int64) (*model.Exercise, error) {
	exercise, ok := f.store.exercises[id]
	if !ok {
		return nil, nil
	}
	copied := *exercise
	return &copied, nil
}

func (f *fakeExerciseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.store.exercises[id]; !ok {
		return fmt.Errorf("exercise not found")
	}
	f.store.deleteExerciseCascade(id)
	return nil
}

// fakeSetRepo реализует SetRepo поверх fakeStore
type fakeSetRepo struct{ store *fakeStore }

func (f *fakeSetRepo) Create(ctx context.Context, exerciseID int64, weight float64, reps int) (*model.Set, error) {
	set := &model.Set{ID: f.store.id(), ExerciseID: exerciseID, Weight: weight, Reps: reps}
	stored := *set
	f.store.sets[set.ID] = &stored
	return set, nil
}

func (f *fakeSetRepo) GetLastByExerciseID(ctx context.Context, exerciseID int64) (*model.Set, error) {
	sets := f.store.setsOf(exerciseID)
	if len(sets) == 0 {
		return nil, nil
	}
	return sets[len(sets)-1], nil
}

func (f *fakeSetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.store.sets[id]; !ok {
		return fmt.Errorf("set not found")
	}
	delete(f.store.sets, id)
	return nil
}

// fakeTemplateRepo in-memory реализация TemplateRepo
type fakeTemplateRepo struct {
	nextID    int64
	templates map[int64]*model.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[int64]*model.Template)}
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *model.Template) error {
	f.nextID++
	template.ID = f.nextID
	template.CreatedAt = time.Now()
	stored := *template
	f.templates[template.ID] = &stored
	return nil
}

func (f *fakeTemplateRepo) Replace(ctx context.Context, template *model.Template) error {
	existing, ok := f.templates[template.ID]
	if !ok {
		return fmt.Errorf("template not found")
	}
	existing.Name = template.Name
	existing.Exercises = template.Exercises
	return nil
}

func (f *fakeTemplateRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.templates[id]; !ok {
		return fmt.Errorf("template not found")
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) GetByUser(ctx context.Context, userID int64) ([]*model.Template, error) {
	var result []*model.Template
	for _, template := range f.templates {
		if template.UserID == userID {
			copied := *template
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (f *fakeTemplateRepo) GetByIDWithExercises(ctx context.Context, id int64) (*model.Template, error) {
	template, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	copied := *template
	return &copied, nil
}
