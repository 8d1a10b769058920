package user

// MockRepository keeps users in memory; sign-in performs the same
// check-and-flip the Postgres repository does transactionally.
type MockRepository struct {
	Users []User
	Err   error
}

func (m *MockRepository) createUser(user *User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}
	m.Users = append(m.Users, *user)
	return nil
}

func (m *MockRepository) signInByName(name string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Users {
		if m.Users[i].Name == name {
			if m.Users[i].IsLoggedIn {
				return nil, ErrAlreadyLoggedIn
			}
			m.Users[i].IsLoggedIn = true
			signedIn := m.Users[i]
			return &signedIn, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockRepository) getAllUsers() ([]User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users, nil
}

func (m *MockRepository) deleteByID(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Users {
		if existing.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
