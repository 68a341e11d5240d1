package queries

import "github.com/maxwharris/monop/app/models"

func (s *Store) GetUserById(userId string) (*models.User, error) {
	user := &models.User{Id: userId}
	if err := s.DB.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	user := new(models.User)
	if err := s.DB.Model(user).Where("username = ?", username).Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	_, err := s.DB.Model(user).Insert()
	return err
}
